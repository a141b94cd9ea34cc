package calculate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"kantine-klima/http-server/response"
	"kantine-klima/internal/service/climate"
)

type Calculator interface {
	Calculate(ctx context.Context, req climate.Request) (*climate.Response, error)
}

// Calculate decodes the body on top of the default input, so an empty
// object calculates the reference canteen.
func Calculate(log *slog.Logger, calc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculate.Calculate"

		req, ok := DecodeRequest(log, w, r, op)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp, err := calc.Calculate(ctx, req)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		render.JSON(w, r, resp)
	}
}

// DecodeRequest reads a calculation request and answers 400 itself when the
// body is not valid JSON.
func DecodeRequest(log *slog.Logger, w http.ResponseWriter, r *http.Request, op string) (climate.Request, bool) {
	req := climate.NewRequest()

	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("failed to decode body")
		response.Error(w, r, http.StatusBadRequest, "invalid request body")
		return climate.Request{}, false
	}

	return req, true
}
