// Package climate runs calculations for the API, the report and the CLI.
package climate

import (
	"context"
	"fmt"

	"kantine-klima/internal/estimator"
	"kantine-klima/internal/service/canteen"
)

// Request is a calculation input. CanteenID, when set, adds a comparison
// against that canteen's current footprint.
type Request struct {
	estimator.Input
	CanteenID *int64 `json:"canteenId,omitempty"`
}

// NewRequest returns a request preset with the default input. Decode JSON on
// top of it so absent fields keep their defaults.
func NewRequest() Request {
	return Request{Input: estimator.DefaultInput()}
}

type CanteenRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Response struct {
	estimator.Result
	Canteen  *CanteenRef         `json:"canteen,omitempty"`
	Baseline *estimator.Baseline `json:"baseline,omitempty"`
}

type ProfileProvider interface {
	Profile(ctx context.Context, id int64) (*canteen.Profile, error)
}

type Service struct {
	profiles ProfileProvider
}

func NewService(profiles ProfileProvider) *Service {
	return &Service{profiles: profiles}
}

// Calculate validates the input, fetches the referenced canteen if any and
// runs the estimator. A failed canteen fetch aborts before estimating.
func (s *Service) Calculate(ctx context.Context, req Request) (*Response, error) {
	const op = "service.climate.Calculate"

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var profile *canteen.Profile
	if req.CanteenID != nil {
		var err error
		profile, err = s.profiles.Profile(ctx, *req.CanteenID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	resp := &Response{Result: estimator.Estimate(req.Input)}

	if profile != nil {
		b := estimator.BaselineSavings(profile.Details.CurrentCo2PerKg, resp.AnnualMeals, resp.AnnualTons)
		resp.Canteen = &CanteenRef{ID: profile.Details.ID, Name: profile.Details.Name}
		resp.Baseline = &b
	}

	return resp, nil
}
