// Package response writes JSON error bodies and maps domain errors to
// HTTP statuses.
package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"kantine-klima/internal/estimator"
	"kantine-klima/internal/service/canteen"
	"kantine-klima/internal/storage"
)

type Response struct {
	Error string `json:"error"`
}

func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, Response{Error: msg})
}

// FromError logs err and answers with the status its class maps to:
// invalid input 400, not found 404, upstream 502, everything else 500.
func FromError(log *slog.Logger, w http.ResponseWriter, r *http.Request, op string, err error) {
	l := log.With(slog.String("op", op), slog.String("error", err.Error()))

	switch {
	case errors.Is(err, estimator.ErrInvalidInput), errors.Is(err, storage.ErrInvalidUpdate):
		l.Warn("invalid request")
		Error(w, r, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, storage.ErrCanteenNotFound):
		l.Warn("canteen not found")
		Error(w, r, http.StatusNotFound, storage.ErrCanteenNotFound.Error())
	case errors.Is(err, canteen.ErrUpstreamUnavailable), errors.Is(err, context.DeadlineExceeded):
		l.Error("canteen data unavailable")
		Error(w, r, http.StatusBadGateway, canteen.ErrUpstreamUnavailable.Error())
	default:
		l.Error("request failed")
		Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

// clientMessage strips the op prefixes so only the field message is shown.
func clientMessage(err error) string {
	var fe *storage.FieldError
	if errors.As(err, &fe) {
		return fe.Error()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if next := errors.Unwrap(e); next == estimator.ErrInvalidInput {
			return e.Error()
		}
	}

	return err.Error()
}
