package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCanteenUpdate_Apply(t *testing.T) {
	c := Canteen{ID: 215, Name: "Bravida", Employees: 120, MeatPercent: 55, OperatingDays: 240}

	CanteenUpdate{Employees: ptr(180), GreenPercent: ptr(35.0)}.Apply(&c)

	assert.Equal(t, 180, c.Employees)
	assert.Equal(t, 35.0, c.GreenPercent)
	// незаданные поля не трогаем
	assert.Equal(t, 55.0, c.MeatPercent)
	assert.Equal(t, 240, c.OperatingDays)
	assert.Equal(t, "Bravida", c.Name)
}

func TestCanteenUpdate_Validate(t *testing.T) {
	tests := []struct {
		name      string
		upd       CanteenUpdate
		wantField string
	}{
		{"empty", CanteenUpdate{}, ""},
		{"valid", CanteenUpdate{MeatPercent: ptr(40.0), Employees: ptr(0), OperatingDays: ptr(366)}, ""},
		{"percent above 100", CanteenUpdate{OrganicPercent: ptr(100.5)}, "organicPercent"},
		{"negative percent", CanteenUpdate{FoodWastePercent: ptr(-1.0)}, "foodWastePercent"},
		{"negative co2", CanteenUpdate{Co2PerKg: ptr(-0.1)}, "co2PerKg"},
		{"negative meals", CanteenUpdate{MealsPerDay: ptr(-3)}, "mealsPerDay"},
		{"too many days", CanteenUpdate{OperatingDays: ptr(367)}, "operatingDays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.upd.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidUpdate)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantField, fe.Field)
		})
	}
}
