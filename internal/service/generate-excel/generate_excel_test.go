package generate_excel

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kantine-klima/internal/estimator"
	"kantine-klima/internal/service/climate"
)

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(ctx context.Context, req climate.Request) (*climate.Response, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*climate.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGenerateExcel(t *testing.T) {
	req := climate.NewRequest()
	resp := &climate.Response{Result: estimator.Estimate(req.Input)}

	calc := new(MockCalculator)
	calc.On("Calculate", mock.Anything, req).Return(resp, nil)

	report, err := NewGenerateService(calc).GenerateExcel(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, report.ID, 26)
	assert.True(t, strings.HasSuffix(report.FileName, report.ID+".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(report.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, recsSheet}, f.GetSheetList())

	id, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, report.ID, id)

	employees, err := f.GetCellValue(summarySheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "150", employees)

	rows, err := f.GetRows(recsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+len(resp.Recommendations))
	assert.Equal(t, "Prioritet", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, estimator.CategoryRedMeat, rows[1][1])
}

func TestGenerateExcel_WithBaseline(t *testing.T) {
	req := climate.NewRequest()
	res := estimator.Estimate(req.Input)
	b := estimator.BaselineSavings(3.444, res.AnnualMeals, res.AnnualTons)
	resp := &climate.Response{
		Result:   res,
		Canteen:  &climate.CanteenRef{ID: 215, Name: "Bravida"},
		Baseline: &b,
	}

	calc := new(MockCalculator)
	calc.On("Calculate", mock.Anything, req).Return(resp, nil)

	report, err := NewGenerateService(calc).GenerateExcel(context.Background(), req)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(report.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)

	var found bool
	for _, row := range rows {
		if len(row) == 2 && row[0] == "Sammenligning" {
			found = true
			assert.Equal(t, "Bravida", row[1])
		}
	}
	assert.True(t, found)
}

func TestGenerateExcel_CalculateError(t *testing.T) {
	calc := new(MockCalculator)
	calc.On("Calculate", mock.Anything, mock.Anything).Return(nil, estimator.ErrInvalidInput)

	_, err := NewGenerateService(calc).GenerateExcel(context.Background(), climate.NewRequest())
	assert.True(t, errors.Is(err, estimator.ErrInvalidInput))
}

func TestSheetWriter_KeepsFirstError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f, sheet: "Mangler"}
	w.set(1, 1, "x")
	require.Error(t, w.err)
	first := w.err

	// ошибка координат не перетирает первую
	w.set(0, 2, "y")
	assert.Equal(t, first, w.err)
	assert.Contains(t, w.err.Error(), "Mangler")

	bad := &sheetWriter{f: f, sheet: "Sheet1"}
	bad.set(0, 1, "x")
	assert.Error(t, bad.err)
}
