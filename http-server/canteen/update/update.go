package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"kantine-klima/http-server/response"
	"kantine-klima/internal/service/canteen"
	"kantine-klima/internal/storage"
)

type CanteenUpdater interface {
	Update(ctx context.Context, id int64, upd storage.CanteenUpdate) (*canteen.Profile, error)
}

// UpdateCanteen меняет данные столовой (админка), кэш профиля сбрасывается в сервисе
func UpdateCanteen(log *slog.Logger, updater CanteenUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.canteen.UpdateCanteen"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			log.With(slog.String("op", op), slog.String("id", idStr)).Warn("invalid canteen id")
			response.Error(w, r, http.StatusBadRequest, "invalid canteen id")
			return
		}

		var upd storage.CanteenUpdate
		if err := render.DecodeJSON(r.Body, &upd); err != nil {
			if errors.Is(err, io.EOF) {
				response.Error(w, r, http.StatusBadRequest, "empty request body")
				return
			}
			log.With(slog.String("op", op), slog.String("error", err.Error())).Warn("failed to decode body")
			response.Error(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		profile, err := updater.Update(ctx, id, upd)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		log.With(slog.String("op", op), slog.Int64("id", id)).Info("canteen updated")

		render.JSON(w, r, profile)
	}
}
