package http

import (
	"log/slog"
	"os"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/handler/http/middleware"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	timeRecordHandler TimeRecordHandler,
	reportHandler ReportHandler,
	eventsHandler EventsHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "painel-gta"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// SSE stream authenticates with its own short-lived token.
		r.Get("/events", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/sse-token", authHandler.SSEToken)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/search", employeeHandler.SearchEmployee)
				r.Post("/", employeeHandler.CreateEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Delete("/", employeeHandler.DeleteEmployee)
					r.Get("/calendar", timeRecordHandler.GetCalendar)
					r.Put("/records/{date}", timeRecordHandler.SetStatus)
					r.Get("/stats", reportHandler.MonthlyStats)
				})
			})
		})
	})

	return r
}
