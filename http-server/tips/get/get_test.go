package get

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kantine-klima/internal/storage"
)

type MockTipsProvider struct {
	mock.Mock
}

func (m *MockTipsProvider) ListWasteTips(ctx context.Context, category string) ([]storage.WasteTip, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.WasteTip), args.Error(1)
}

func (m *MockTipsProvider) ListPlantAlternatives(ctx context.Context, meat string) ([]storage.PlantAlternative, error) {
	args := m.Called(ctx, meat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.PlantAlternative), args.Error(1)
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestGetWasteTips(t *testing.T) {
	tips := new(MockTipsProvider)
	want := []storage.WasteTip{{ID: 3, Category: "Buffet", Title: "Mindre fade, hyppigere påfyldning", PotentialReductionPercent: 15}}
	tips.On("ListWasteTips", mock.Anything, "Buffet").Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/waste-tips?category=Buffet", nil)
	rr := httptest.NewRecorder()
	GetWasteTips(logger, tips).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []storage.WasteTip
	require.NoError(t, render.DecodeJSON(rr.Body, &got))
	assert.Equal(t, want, got)
}

func TestGetWasteTips_Error(t *testing.T) {
	tips := new(MockTipsProvider)
	tips.On("ListWasteTips", mock.Anything, "").Return(nil, errors.New("db closed"))

	req := httptest.NewRequest(http.MethodGet, "/api/waste-tips", nil)
	rr := httptest.NewRecorder()
	GetWasteTips(logger, tips).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetPlantAlternatives(t *testing.T) {
	tips := new(MockTipsProvider)
	want := []storage.PlantAlternative{{ID: 3, MeatProduct: "Oksekød", Alternative: "Svampe (portobello)", Co2SavingPercent: 98.5}}
	tips.On("ListPlantAlternatives", mock.Anything, "Oksekød").Return(want, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/plant-alternatives?meat="+url.QueryEscape("Oksekød"), nil)
	rr := httptest.NewRecorder()
	GetPlantAlternatives(logger, tips).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []storage.PlantAlternative
	require.NoError(t, render.DecodeJSON(rr.Body, &got))
	assert.Equal(t, want, got)
	tips.AssertExpectations(t)
}
