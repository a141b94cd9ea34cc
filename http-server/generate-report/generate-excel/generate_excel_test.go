package generate_excel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kantine-klima/internal/estimator"
	"kantine-klima/internal/service/climate"
	genexcel "kantine-klima/internal/service/generate-excel"
	"kantine-klima/internal/storage"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateExcel(ctx context.Context, req climate.Request) (*genexcel.Report, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genexcel.Report), args.Error(1)
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestGenerateReportExcel_RealWorkbook(t *testing.T) {
	gen := genexcel.NewGenerateService(climate.NewService(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/report/excel", strings.NewReader(`{"employees": 200}`))
	rr := httptest.NewRecorder()
	GenerateReportExcel(logger, gen).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "klima_rapport_")

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	employees, err := f.GetCellValue("Resultat", "B5")
	require.NoError(t, err)
	assert.Equal(t, "200", employees)
}

func TestGenerateReportExcel_Errors(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateExcel", mock.Anything, mock.MatchedBy(func(r climate.Request) bool { return r.Employees == -1 })).
		Return(nil, fmt.Errorf("calc: %w", estimator.ErrInvalidInput))
	gen.On("GenerateExcel", mock.Anything, mock.MatchedBy(func(r climate.Request) bool { return r.CanteenID != nil })).
		Return(nil, fmt.Errorf("calc: %w", storage.ErrCanteenNotFound))

	tests := []struct {
		body       string
		wantStatus int
	}{
		{`{"employees": -1}`, http.StatusBadRequest},
		{`{"canteenId": 7}`, http.StatusNotFound},
		{`not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/report/excel", strings.NewReader(tt.body))
		rr := httptest.NewRecorder()
		GenerateReportExcel(logger, gen).ServeHTTP(rr, req)

		assert.Equal(t, tt.wantStatus, rr.Code, tt.body)
	}
}
