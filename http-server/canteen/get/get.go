package get

import (
	"context"
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

type CanteenProvider interface {
	List(ctx context.Context) ([]storage.CanteenSummary, error)
	Profile(ctx context.Context, id int64) (*canteen.Profile, error)
}

func GetCanteens(log *slog.Logger, provider CanteenProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.canteen.GetCanteens"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		canteens, err := provider.List(ctx)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		render.JSON(w, r, canteens)
	}
}

// GetCanteen отдаёт профиль столовой: детали, отходы и стартовый сценарий
func GetCanteen(log *slog.Logger, provider CanteenProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.canteen.GetCanteen"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			log.With(slog.String("op", op), slog.String("id", idStr)).Warn("invalid canteen id")
			response.Error(w, r, http.StatusBadRequest, "invalid canteen id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		profile, err := provider.Profile(ctx, id)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		render.JSON(w, r, profile)
	}
}
