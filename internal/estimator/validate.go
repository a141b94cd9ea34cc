package estimator

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid input")

// Validate rejects values outside their domain, Inf and NaN included. The error wraps
// ErrInvalidInput and names the offending field.
func (in Input) Validate() error {
	if in.Employees < 0 {
		return fieldError("employees", "must not be negative")
	}
	if in.OperatingDays < 0 {
		return fieldError("operatingDays", "must not be negative")
	}
	if err := checkRange("attendanceRate", in.AttendanceRate, 0, 1); err != nil {
		return err
	}

	percents := []struct {
		name string
		v    float64
	}{
		{"meatDistribution.redMeat", in.MeatDistribution.RedMeat},
		{"meatDistribution.brightMeat", in.MeatDistribution.BrightMeat},
		{"meatDistribution.fish", in.MeatDistribution.Fish},
		{"meatDistribution.vegetarian", in.MeatDistribution.Vegetarian},
		{"seasonalProducePercent", in.SeasonalProducePercent},
		{"organicPercent", in.OrganicPercent},
	}
	for _, p := range percents {
		if err := checkRange(p.name, p.v, 0, 100); err != nil {
			return err
		}
	}

	wastes := []struct {
		name string
		v    float64
	}{
		{"waste.preparation", in.Waste.Preparation},
		{"waste.buffet", in.Waste.Buffet},
		{"waste.plate", in.Waste.Plate},
	}
	for _, w := range wastes {
		if err := checkRange(w.name, w.v, 0, 100); err != nil {
			return err
		}
	}
	// доли отходов складываются, вместе не больше всей еды
	if err := checkRange("waste", in.Waste.Total(), 0, 100); err != nil {
		return err
	}

	return nil
}

func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fieldError(name, fmt.Sprintf("must be between %g and %g", lo, hi))
	}
	return nil
}

func fieldError(name, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, name, msg)
}
