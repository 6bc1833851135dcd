package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Backgrounds(ctx context.Context) ([]model.Background, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Background), args.Error(1)
}

func (m *MockCatalogService) Tracks(ctx context.Context) ([]model.Track, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Track), args.Error(1)
}

func (m *MockCatalogService) ClockFonts(ctx context.Context) ([]model.ClockFontStyle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClockFontStyle), args.Error(1)
}

func (m *MockCatalogService) TextFonts(ctx context.Context) ([]model.TextFont, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TextFont), args.Error(1)
}

func (m *MockCatalogService) MediaURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) MediaUploadURL(ctx context.Context, key, contentType string) (string, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}

func setupCatalogRouter(svc *MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewCatalogHandler(svc)
	r.GET("/catalog/media-url", h.GetMediaURL)
	r.POST("/catalog/media-upload-url", h.CreateMediaUploadURL)
	return r
}

func TestCatalogHandler_GetMediaURL(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("MediaURL", mock.Anything, "backgrounds/rain.mp4").
		Return("https://bucket.example/rain?sig=x", nil)

	r := setupCatalogRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog/media-url?key=backgrounds%2Frain.mp4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://bucket.example/rain")
	svc.AssertExpectations(t)
}

func TestCatalogHandler_CreateMediaUploadURL(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("MediaUploadURL", mock.Anything, "backgrounds/new.mp4", "video/mp4").
		Return("https://bucket.example/new?sig=y", nil)

	r := setupCatalogRouter(svc)
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"key":"backgrounds/new.mp4","content_type":"video/mp4"}`)
	req := httptest.NewRequest(http.MethodPost, "/catalog/media-upload-url", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://bucket.example/new")
	svc.AssertExpectations(t)
}

func TestCatalogHandler_CreateMediaUploadURL_MissingContentType(t *testing.T) {
	svc := new(MockCatalogService)

	r := setupCatalogRouter(svc)
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"key":"backgrounds/new.mp4"}`)
	req := httptest.NewRequest(http.MethodPost, "/catalog/media-upload-url", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "MediaUploadURL", mock.Anything, mock.Anything, mock.Anything)
}
