package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hamkar/worklog-backend-go/internal/handler/http/middleware"
	"github.com/hamkar/worklog-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, env string, authHandler AuthHandler, workLogHandler WorkLogHandler, leaveHandler LeaveHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklog-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/worklogs", func(r chi.Router) {
				r.Post("/", workLogHandler.Create)
				r.Get("/", workLogHandler.List)
				r.Get("/day/{date}", workLogHandler.DayReport)
				r.Get("/monthly/{year}/{month}", workLogHandler.MonthlyReport)
				r.Get("/jalali/monthly/{year}/{month}", workLogHandler.JalaliMonthlyReport)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", workLogHandler.Get)
					r.Delete("/", workLogHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/", leaveHandler.List)
				r.Post("/jalali", leaveHandler.CreateJalali)
				r.Get("/total/{year}/{month}", leaveHandler.MonthlyCount)
				r.Get("/total-hourly/{year}/{month}", leaveHandler.MonthlyHourlyReport)
				r.Get("/jalali/total-month/{year}/{month}", leaveHandler.JalaliMonthlyReport)
				r.Get("/jalali/total-year/{year}", leaveHandler.JalaliYearlyReport)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", leaveHandler.Get)
					r.Delete("/", leaveHandler.Delete)
				})
			})
		})
	})
	return r
}
