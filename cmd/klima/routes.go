package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"kantine-klima/http-server/calculate"
	getcanteen "kantine-klima/http-server/canteen/get"
	upcanteen "kantine-klima/http-server/canteen/update"
	"kantine-klima/http-server/composition"
	generate_excel "kantine-klima/http-server/generate-report/generate-excel"
	gettips "kantine-klima/http-server/tips/get"
	"kantine-klima/internal/config"
	"kantine-klima/internal/middleware/auth"
	"kantine-klima/internal/service/canteen"
	"kantine-klima/internal/service/climate"
	generate_excel2 "kantine-klima/internal/service/generate-excel"
	"kantine-klima/internal/storage/sqlstore"
)

const frontendDir = "./frontend-dist"

func routes(
	cfg config.Config,
	log *slog.Logger,
	storage *sqlstore.Storage,
	canteens *canteen.Service,
	calc *climate.Service,
	genService *generate_excel2.GenerateExcelService,
) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	//ip пользователя
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Кантины
	router.Get("/api/canteens", getcanteen.GetCanteens(log, canteens))
	router.Get("/api/canteen/{id}", getcanteen.GetCanteen(log, canteens))

	// Расчёт
	router.Post("/api/calculate", calculate.Calculate(log, calc))
	router.Post("/api/composition/clamp", composition.Clamp(log))

	// Справочники
	router.Get("/api/waste-tips", gettips.GetWasteTips(log, storage))
	router.Get("/api/plant-alternatives", gettips.GetPlantAlternatives(log, storage))

	router.Post("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Put("/canteen/{id}", upcanteen.UpdateCanteen(log, canteens))

	router.Mount("/api/admin", adminRouter)

	mountFrontend(router, log)

	return router
}

// mountFrontend отдаёт собранный фронтенд, если папка есть. Без неё работает только API.
func mountFrontend(router *chi.Mux, log *slog.Logger) {
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Info("frontend not found, serving api only", slog.String("path", frontendDir))
		return
	}

	fileServer := http.FileServer(http.Dir(frontendDir))

	router.Handle("/assets/*", fileServer)

	//SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})
}
