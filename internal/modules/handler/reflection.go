package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/modules/serializer"
	"github.com/moodscape-io/moodscape/internal/modules/service"
)

type ReflectionHandler struct {
	svc    service.ReflectionService
	spaces service.SpaceService
}

func NewReflectionHandler(s service.ReflectionService, spaces service.SpaceService) *ReflectionHandler {
	return &ReflectionHandler{svc: s, spaces: spaces}
}

type CheckoutReq struct {
	DurationSec int `form:"duration_sec" json:"duration_sec" binding:"min=0" example:"1500"`
}

// Checkout godoc
//
//	@Summary		Checkout session
//	@Description	Synthesize a reflection question for the finished session. Always returns a usable reflection; spaces without notes get a mood-matched static one.
//	@Tags			reflection
//	@Accept			json
//	@Produce		json
//	@Param			space_id	path	string				true	"Space ID"	Format(uuid)	Example(123e4567-e89b-12d3-a456-426614174000)
//	@Param			payload		body	handler.CheckoutReq	true	"Checkout payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.Reflection}
//	@Router			/space/{space_id}/checkout [post]
func (h *ReflectionHandler) Checkout(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("space_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CheckoutReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ref, err := h.svc.Checkout(c.Request.Context(), spaceID, req.DurationSec)
	if err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: ref})
}

type FinalizeDurationReq struct {
	DurationSec int `form:"duration_sec" json:"duration_sec" binding:"required,min=1" example:"1500"`
}

// FinalizeDuration godoc
//
//	@Summary		Finalize session duration
//	@Description	Persist the session duration after checkout. Kept separate from checkout so an abandoned checkout writes nothing.
//	@Tags			reflection
//	@Accept			json
//	@Produce		json
//	@Param			space_id	path	string						true	"Space ID"	Format(uuid)	Example(123e4567-e89b-12d3-a456-426614174000)
//	@Param			payload		body	handler.FinalizeDurationReq	true	"FinalizeDuration payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/space/{space_id}/duration [put]
func (h *ReflectionHandler) FinalizeDuration(c *gin.Context) {
	spaceID, err := uuid.Parse(c.Param("space_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := FinalizeDurationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.spaces.FinalizeDuration(c.Request.Context(), spaceID, req.DurationSec); err != nil {
		c.JSON(errResponse(err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{})
}
