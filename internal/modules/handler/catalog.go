package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moodscape-io/moodscape/internal/modules/serializer"
	"github.com/moodscape-io/moodscape/internal/modules/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: s}
}

// GetBackgrounds godoc
//
//	@Summary		List backgrounds
//	@Description	List active catalog backgrounds with their emotion and descriptor tags
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Background}
//	@Router			/catalog/backgrounds [get]
func (h *CatalogHandler) GetBackgrounds(c *gin.Context) {
	items, err := h.svc.Backgrounds(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetTracks godoc
//
//	@Summary		List tracks
//	@Description	List active catalog audio tracks
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Track}
//	@Router			/catalog/tracks [get]
func (h *CatalogHandler) GetTracks(c *gin.Context) {
	items, err := h.svc.Tracks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetClockFonts godoc
//
//	@Summary		List clock font styles
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ClockFontStyle}
//	@Router			/catalog/clock-fonts [get]
func (h *CatalogHandler) GetClockFonts(c *gin.Context) {
	items, err := h.svc.ClockFonts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetTextFonts godoc
//
//	@Summary		List text fonts
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.TextFont}
//	@Router			/catalog/text-fonts [get]
func (h *CatalogHandler) GetTextFonts(c *gin.Context) {
	items, err := h.svc.TextFonts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type MediaURLReq struct {
	Key string `form:"key" json:"key" binding:"required" example:"backgrounds/rainy-window.mp4"`
}

// GetMediaURL godoc
//
//	@Summary		Resolve media URL
//	@Description	Resolve a catalog media key to a short-lived presigned download URL
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			key	query	string	true	"Object key of the catalog asset"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=string}
//	@Router			/catalog/media-url [get]
func (h *CatalogHandler) GetMediaURL(c *gin.Context) {
	req := MediaURLReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	url, err := h.svc.MediaURL(c.Request.Context(), req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "presign failed", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: url})
}

type MediaUploadURLReq struct {
	Key         string `form:"key" json:"key" binding:"required" example:"backgrounds/rainy-window.mp4"`
	ContentType string `form:"content_type" json:"content_type" binding:"required" example:"video/mp4"`
}

// CreateMediaUploadURL godoc
//
//	@Summary		Presign media upload
//	@Description	Presign a PUT URL for placing a new catalog media object directly into storage
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.MediaUploadURLReq	true	"CreateMediaUploadURL payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=string}
//	@Router			/catalog/media-upload-url [post]
func (h *CatalogHandler) CreateMediaUploadURL(c *gin.Context) {
	req := MediaUploadURLReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	url, err := h.svc.MediaUploadURL(c.Request.Context(), req.Key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "presign failed", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: url})
}
