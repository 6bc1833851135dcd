package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/moodscape-io/moodscape/internal/config"
	"github.com/moodscape-io/moodscape/internal/infra/blob"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"github.com/moodscape-io/moodscape/internal/modules/repo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CatalogService is the read side of the pre-seeded catalog. Listings go
// through a redis read-through cache since the catalog only changes on
// seeding, and media keys resolve to presigned URLs on demand.
type CatalogService interface {
	Backgrounds(ctx context.Context) ([]model.Background, error)
	Tracks(ctx context.Context) ([]model.Track, error)
	ClockFonts(ctx context.Context) ([]model.ClockFontStyle, error)
	TextFonts(ctx context.Context) ([]model.TextFont, error)
	MediaURL(ctx context.Context, key string) (string, error)
	MediaUploadURL(ctx context.Context, key, contentType string) (string, error)
}

type catalogService struct {
	r         repo.CatalogRepo
	rdb       *redis.Client
	blob      *blob.S3Deps
	log       *zap.Logger
	ttl       time.Duration
	presign   time.Duration
}

func NewCatalogService(r repo.CatalogRepo, rdb *redis.Client, b *blob.S3Deps, cfg *config.Config, log *zap.Logger) CatalogService {
	ttl := time.Duration(cfg.Redis.CatalogTTLS) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	presign := time.Duration(cfg.S3.PresignExpireSec) * time.Second
	if presign <= 0 {
		presign = 15 * time.Minute
	}
	return &catalogService{r: r, rdb: rdb, blob: b, log: log, ttl: ttl, presign: presign}
}

func (s *catalogService) Backgrounds(ctx context.Context) ([]model.Background, error) {
	return cachedList(ctx, s, "catalog:backgrounds", s.r.ListBackgrounds)
}

func (s *catalogService) Tracks(ctx context.Context) ([]model.Track, error) {
	return cachedList(ctx, s, "catalog:tracks", s.r.ListTracks)
}

func (s *catalogService) ClockFonts(ctx context.Context) ([]model.ClockFontStyle, error) {
	return cachedList(ctx, s, "catalog:clock_fonts", s.r.ListClockFonts)
}

func (s *catalogService) TextFonts(ctx context.Context) ([]model.TextFont, error) {
	return cachedList(ctx, s, "catalog:text_fonts", s.r.ListTextFonts)
}

func (s *catalogService) MediaURL(ctx context.Context, key string) (string, error) {
	return s.blob.PresignGet(ctx, key, s.presign)
}

// MediaUploadURL presigns a PUT so seeding tooling can place new catalog
// media without routing bytes through the API.
func (s *catalogService) MediaUploadURL(ctx context.Context, key, contentType string) (string, error) {
	return s.blob.PresignPut(ctx, key, contentType, s.presign)
}

// cachedList serves from redis when possible and falls back to the repo.
// Cache failures are logged and ignored; the database remains the source of
// truth.
func cachedList[T any](ctx context.Context, s *catalogService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var items []T
			if uerr := sonic.Unmarshal(raw, &items); uerr == nil {
				return items, nil
			}
		} else if err != redis.Nil {
			s.log.Sugar().Debugw("catalog cache read failed", "key", key, "err", err)
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, merr := sonic.Marshal(items); merr == nil {
			if serr := s.rdb.Set(ctx, key, raw, s.ttl).Err(); serr != nil {
				s.log.Sugar().Debugw("catalog cache write failed", "key", key, "err", serr)
			}
		}
	}
	return items, nil
}
