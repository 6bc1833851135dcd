package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/infra/llm"
	"github.com/moodscape-io/moodscape/internal/middleware"
	"github.com/moodscape-io/moodscape/internal/modules/serializer"
	"github.com/moodscape-io/moodscape/internal/modules/service"
)

type SpaceHandler struct {
	svc service.SpaceService
}

func NewSpaceHandler(s service.SpaceService) *SpaceHandler {
	return &SpaceHandler{svc: s}
}

// errResponse maps service-level failures to HTTP responses. The gateway's
// own taxonomy surfaces as 502 except for prompt validation, which is the
// caller's fault.
func errResponse(err error) (int, serializer.Response) {
	var unknownRef *service.UnknownRefError
	var gatewayErr *llm.Error

	switch {
	case errors.Is(err, service.ErrSpaceNotFound):
		return http.StatusNotFound, serializer.NotFoundErr("space not found")
	case errors.Is(err, service.ErrEmptyPatch), errors.Is(err, service.ErrNoTags):
		return http.StatusBadRequest, serializer.ParamErr(err.Error(), nil)
	case errors.As(err, &unknownRef):
		return http.StatusBadRequest, serializer.ParamErr(unknownRef.Error(), nil)
	case errors.Is(err, service.ErrEmptyCatalog):
		return http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, "catalog is not seeded", err)
	case errors.As(err, &gatewayErr):
		if gatewayErr.Code == llm.CodeInvalidRequest {
			return http.StatusBadRequest, serializer.ParamErr(gatewayErr.Msg, nil)
		}
		return http.StatusBadGateway, serializer.UpstreamErr("", err)
	default:
		return http.StatusInternalServerError, serializer.DBErr("", err)
	}
}

type GenerateSpaceReq struct {
	Prompt string `form:"prompt" json:"prompt" binding:"required" example:"rainy night deep focus"`
}

// GenerateSpace godoc
//
//	@Summary		Generate space attributes
//	@Description	Interpret a free-text prompt into catalog-constrained attributes plus a matched background and track set. Nothing is persisted.
//	@Tags			space
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.GenerateSpaceReq	true	"GenerateSpace payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.GenerateOutput}
//	@Router			/space/generate [post]
func (h *SpaceHandler) GenerateSpace(c *gin.Context) {
	req := GenerateSpaceReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	out, err := h.svc.Generate(c.Request.Context(), user.ID, req.Prompt)
	if err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

type CreateSpaceReq struct {
	Name               string   `form:"name" json:"name" binding:"required" example:"Rainy Focus Den"`
	Description        *string  `form:"description" json:"description"`
	Mood               string   `form:"mood" json:"mood" binding:"required" example:"Calm"`
	PersonalityEssence *string  `form:"personality_essence" json:"personality_essence"`
	BackgroundID       *string  `form:"background_id" json:"background_id"`
	ClockFontID        *string  `form:"clock_font_id" json:"clock_font_id"`
	TextFontID         *string  `form:"text_font_id" json:"text_font_id"`
	ClockFont          *string  `form:"clock_font" json:"clock_font" example:"minimal"`
	TextFont           *string  `form:"text_font" json:"text_font" example:"Inter"`
	Tags               []string `form:"tags" json:"tags" binding:"required,min=1"`
	TrackIDs           []string `form:"track_ids" json:"track_ids"`
	PlaylistName       string   `form:"playlist_name" json:"playlist_name"`
	Notes              []string `form:"notes" json:"notes"`
	Prompt             *string  `form:"prompt" json:"prompt"`
	DurationSec        int      `form:"duration_sec" json:"duration_sec"`
}

// CreateSpace godoc
//
//	@Summary		Create space
//	@Description	Persist a full space graph (space, tags, playlist, notes, generation record) in one transaction
//	@Tags			space
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateSpaceReq	true	"CreateSpace payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Space}
//	@Router			/space [post]
func (h *SpaceHandler) CreateSpace(c *gin.Context) {
	req := CreateSpaceReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	in := service.CreateSpaceInput{
		OwnerID:            user.ID,
		Name:               req.Name,
		Description:        req.Description,
		Mood:               req.Mood,
		PersonalityEssence: req.PersonalityEssence,
		ClockFontName:      req.ClockFont,
		TextFontName:       req.TextFont,
		TagNames:           req.Tags,
		PlaylistName:       req.PlaylistName,
		Notes:              req.Notes,
		Prompt:             req.Prompt,
		DurationSec:        req.DurationSec,
	}

	var err error
	if in.BackgroundID, err = parseOptionalID(req.BackgroundID); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid background_id", err))
		return
	}
	if in.ClockFontID, err = parseOptionalID(req.ClockFontID); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid clock_font_id", err))
		return
	}
	if in.TextFontID, err = parseOptionalID(req.TextFontID); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid text_font_id", err))
		return
	}
	if in.TrackIDs, err = parseIDList(req.TrackIDs); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid track_ids", err))
		return
	}

	space, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: space})
}

// GetSpace godoc
//
//	@Summary		Get space
//	@Description	Get a space with its tags, playlists, notes, widget layout and generation record
//	@Tags			space
//	@Accept			json
//	@Produce		json
//	@Param			space_id	path	string	true	"Space ID"	Format(uuid)	Example(123e4567-e89b-12d3-a456-426614174000)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Space}
//	@Router			/space/{space_id} [get]
func (h *SpaceHandler) GetSpace(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("space_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	space, err := h.svc.GetByID(c.Request.Context(), spaceID)
	if err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: space})
}

type GetSpacesReq struct {
	Limit          int    `form:"limit,default=20" json:"limit" binding:"min=1,max=200" example:"20"`
	AfterCreatedAt string `form:"after_created_at" json:"after_created_at" example:"2026-01-02T15:04:05Z"`
	AfterID        string `form:"after_id" json:"after_id"`
	TimeDesc       bool   `form:"time_desc,default=false" json:"time_desc" example:"false"`
}

// GetSpaces godoc
//
//	@Summary		List spaces
//	@Description	List the authenticated user's active spaces, keyset-paged on (created_at, id)
//	@Tags			space
//	@Accept			json
//	@Produce		json
//	@Param			limit				query	integer	false	"Limit of spaces to return, default 20. Max 200."
//	@Param			after_created_at	query	string	false	"created_at of the last item from the previous page (RFC3339)"
//	@Param			after_id			query	string	false	"id of the last item from the previous page"
//	@Param			time_desc			query	string	false	"Order by created_at descending if true, ascending if false (default false)"	example:"false"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Space}
//	@Router			/space [get]
func (h *SpaceHandler) GetSpaces(c *gin.Context) {
	req := GetSpacesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	in := service.ListSpacesInput{
		OwnerID:  user.ID,
		Limit:    req.Limit,
		TimeDesc: req.TimeDesc,
	}
	if req.AfterCreatedAt != "" {
		t, err := time.Parse(time.RFC3339, req.AfterCreatedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid after_created_at", err))
			return
		}
		in.AfterCreatedAt = t
	}
	if req.AfterID != "" {
		id, err := uuid.Parse(req.AfterID)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid after_id", err))
			return
		}
		in.AfterID = id
	}

	spaces, err := h.svc.List(c.Request.Context(), in)
	if err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: spaces})
}

type SpaceMetadataReq struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	Mood               *string `json:"mood"`
	PersonalityEssence *string `json:"personality_essence"`
	DurationSec        *int    `json:"duration_sec"`
}

type SpaceAppearanceReq struct {
	BackgroundID *string `json:"background_id"`
	ClockFontID  *string `json:"clock_font_id"`
	TextFontID   *string `json:"text_font_id"`
}

type PlaylistLinksReq struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

type WidgetReq struct {
	WidgetID string         `json:"widget_id" binding:"required"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Metadata map[string]any `json:"metadata"`
}

type UpdateSpaceReq struct {
	Metadata   *SpaceMetadataReq   `json:"metadata"`
	Appearance *SpaceAppearanceReq `json:"appearance"`
	Tags       []string            `json:"tags"`
	Playlists  *PlaylistLinksReq   `json:"playlists"`
	Widgets    []WidgetReq         `json:"widgets"`
}

// UpdateSpace godoc
//
//	@Summary		Update space
//	@Description	Apply a partial update. Each section is optional; tags and widgets replace the stored set wholesale.
//	@Tags			space
//	@Accept			json
//	@Produce		json
//	@Param			space_id	path	string					true	"Space ID"	Format(uuid)	Example(123e4567-e89b-12d3-a456-426614174000)
//	@Param			payload		body	handler.UpdateSpaceReq	true	"UpdateSpace payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Space}
//	@Router			/space/{space_id} [patch]
func (h *SpaceHandler) UpdateSpace(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("space_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateSpaceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.UpdateSpaceInput{Tags: req.Tags}

	if m := req.Metadata; m != nil {
		in.Metadata = &service.SpaceMetadataPatch{
			Name:               m.Name,
			Description:        m.Description,
			Mood:               m.Mood,
			PersonalityEssence: m.PersonalityEssence,
			DurationSec:        m.DurationSec,
		}
	}
	if a := req.Appearance; a != nil {
		appearance := &service.SpaceAppearancePatch{}
		if appearance.BackgroundID, err = parseOptionalID(a.BackgroundID); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid background_id", err))
			return
		}
		if appearance.ClockFontID, err = parseOptionalID(a.ClockFontID); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid clock_font_id", err))
			return
		}
		if appearance.TextFontID, err = parseOptionalID(a.TextFontID); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid text_font_id", err))
			return
		}
		in.Appearance = appearance
	}
	if pl := req.Playlists; pl != nil {
		links := &service.PlaylistLinksPatch{}
		if links.Add, err = parseIDList(pl.Add); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid playlist id", err))
			return
		}
		if links.Remove, err = parseIDList(pl.Remove); err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid playlist id", err))
			return
		}
		in.PlaylistLinks = links
	}
	if req.Widgets != nil {
		widgets := make([]service.WidgetInput, 0, len(req.Widgets))
		for _, w := range req.Widgets {
			widgets = append(widgets, service.WidgetInput{
				WidgetID: w.WidgetID,
				X:        w.X,
				Y:        w.Y,
				Metadata: w.Metadata,
			})
		}
		in.Widgets = widgets
	}

	space, err := h.svc.Update(c.Request.Context(), spaceID, in)
	if err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: space})
}

// DeleteSpace godoc
//
//	@Summary		Delete space
//	@Description	Soft-delete a space and cascade to its tags and widget layout; playlists are detached, their tracks kept
//	@Tags			space
//	@Accept			json
//	@Produce		json
//	@Param			space_id	path	string	true	"Space ID"	Format(uuid)	Example(123e4567-e89b-12d3-a456-426614174000)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/space/{space_id} [delete]
func (h *SpaceHandler) DeleteSpace(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("space_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), spaceID); err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}

func parseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseIDList(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
