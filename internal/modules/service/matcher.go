package service

import (
	"context"
	"math/rand/v2"
	"sort"

	"github.com/moodscape-io/moodscape/internal/modules/model"
)

// MatcherService scores catalog candidates against the interpreted emotion
// and tag sets. Scoring is a pure read over the cached catalog; no lock is
// held, so concurrent creations may select the same resource.
type MatcherService interface {
	MatchBackground(ctx context.Context, emotions, tags []string) (*model.Background, error)
	MatchTracks(ctx context.Context, emotions, tags []string, limit int) ([]model.Track, error)
}

type matcherService struct {
	catalog CatalogService
}

func NewMatcherService(catalog CatalogService) MatcherService {
	return &matcherService{catalog: catalog}
}

// MatchBackground returns a uniformly random candidate among those sharing
// the maximum score, so equal-score candidates are equiprobable regardless
// of catalog order. An empty catalog is a hard failure: a space cannot be
// assembled without a background.
func (s *matcherService) MatchBackground(ctx context.Context, emotions, tags []string) (*model.Background, error) {
	candidates, err := s.catalog.Backgrounds(ctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyCatalog
	}

	best := -1
	var tied []int
	for i := range candidates {
		score := overlapScore(emotions, candidates[i].EmotionTags) +
			overlapScore(tags, candidates[i].DescriptorTags)
		switch {
		case score > best:
			best = score
			tied = tied[:0]
			tied = append(tied, i)
		case score == best:
			tied = append(tied, i)
		}
	}

	pick := candidates[tied[rand.IntN(len(tied))]]
	return &pick, nil
}

// MatchTracks returns up to limit tracks ordered by score. Candidates are
// shuffled before the stable sort so every equal-score group, including the
// ties straddling the cutoff, fills its slots in random order instead of
// catalog order. An empty track catalog degrades to an empty playlist.
func (s *matcherService) MatchTracks(ctx context.Context, emotions, tags []string, limit int) ([]model.Track, error) {
	if limit <= 0 {
		return nil, nil
	}
	candidates, err := s.catalog.Tracks(ctx)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []model.Track{}, nil
	}

	scored := make([]scoredTrack, len(candidates))
	for i := range candidates {
		scored[i] = scoredTrack{
			track: candidates[i],
			score: overlapScore(emotions, candidates[i].EmotionTags) +
				overlapScore(tags, candidates[i].DescriptorTags),
		}
	}

	rand.Shuffle(len(scored), func(i, j int) { scored[i], scored[j] = scored[j], scored[i] })
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if limit > len(scored) {
		limit = len(scored)
	}
	out := make([]model.Track, 0, limit)
	for _, st := range scored[:limit] {
		out = append(out, st.track)
	}
	return out, nil
}

type scoredTrack struct {
	track model.Track
	score int
}

// overlapScore counts set-membership intersections; multiplicity is ignored.
func overlapScore(wanted []string, candidate []string) int {
	if len(wanted) == 0 || len(candidate) == 0 {
		return 0
	}
	set := make(map[string]bool, len(candidate))
	for _, c := range candidate {
		set[c] = true
	}
	seen := make(map[string]bool, len(wanted))
	score := 0
	for _, w := range wanted {
		if set[w] && !seen[w] {
			score++
			seen[w] = true
		}
	}
	return score
}
