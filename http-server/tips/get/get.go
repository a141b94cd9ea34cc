package get

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"kantine-klima/http-server/response"
	"kantine-klima/internal/storage"
)

type TipsProvider interface {
	ListWasteTips(ctx context.Context, category string) ([]storage.WasteTip, error)
	ListPlantAlternatives(ctx context.Context, meat string) ([]storage.PlantAlternative, error)
}

// GetWasteTips, фильтр ?category= по желанию
func GetWasteTips(log *slog.Logger, tips TipsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tips.GetWasteTips"

		category := strings.TrimSpace(r.URL.Query().Get("category"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := tips.ListWasteTips(ctx, category)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}

func GetPlantAlternatives(log *slog.Logger, tips TipsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tips.GetPlantAlternatives"

		meat := strings.TrimSpace(r.URL.Query().Get("meat"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := tips.ListPlantAlternatives(ctx, meat)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		render.JSON(w, r, list)
	}
}
