package composition

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"kantine-klima/http-server/response"
	"kantine-klima/internal/estimator"
)

type ClampRequest struct {
	RedMeat    float64 `json:"redMeat"`
	BrightMeat float64 `json:"brightMeat"`
	Fish       float64 `json:"fish"`
	Changed    string  `json:"changed"`
}

// Clamp normalizes slider values the same way the calculator UI does.
func Clamp(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.composition.Clamp"

		var req ClampRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("failed to decode body")
			response.Error(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		changed, err := estimator.ParseSlider(req.Changed)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		render.JSON(w, r, estimator.ClampComposition(req.RedMeat, req.BrightMeat, req.Fish, changed))
	}
}
