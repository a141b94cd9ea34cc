package generate_excel

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"kantine-klima/http-server/calculate"
	"kantine-klima/http-server/response"
	"kantine-klima/internal/service/climate"
	genexcel "kantine-klima/internal/service/generate-excel"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, req climate.Request) (*genexcel.Report, error)
}

// GenerateReportExcel takes the same body as /api/calculate and answers with
// an xlsx attachment.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		req, ok := calculate.DecodeRequest(log, w, r, op)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second) // на Excel побольше времени
		defer cancel()

		report, err := gen.GenerateExcel(ctx, req)
		if err != nil {
			response.FromError(log, w, r, op, err)
			return
		}

		log.With(slog.String("op", op), slog.String("report_id", report.ID)).Info("report generated")

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+report.FileName)
		w.Header().Set("Content-Length", strconv.Itoa(len(report.Data)))
		w.Write(report.Data)
	}
}
