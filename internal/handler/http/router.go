package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/middleware"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/jwt"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       AuthHandler
	TimeRecord TimeRecordHandler
	Absence    AbsenceHandler
	Ticket     TicketHandler
	Adjustment AdjustmentHandler
	Company    CompanyHandler
	Employee   EmployeeHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-digital"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-ID", "X-Device-Name", "X-Platform", "X-App-Version"},
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
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/time-records", func(r chi.Router) {
				r.Post("/", h.TimeRecord.Create)
				r.Get("/", h.TimeRecord.List)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Post("/", h.Absence.Create)
				r.Get("/", h.Absence.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAbsenceReview))
					r.Get("/stats", h.Absence.Stats)
					r.Put("/{id}", h.Absence.Review)
					r.Put("/{id}/review", h.Absence.Review)
				})
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Post("/", h.Ticket.Create)
				r.Get("/", h.Ticket.List)
				r.Post("/{id}/responses", h.Ticket.Respond)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionTicketResolve))
					r.Put("/{id}/resolve", h.Ticket.Resolve)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Post("/", h.Adjustment.Create)
				r.Get("/", h.Adjustment.List)
				r.Post("/generate-justification", h.Adjustment.GenerateJustification)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAdjustmentReview))
					r.Put("/{id}", h.Adjustment.Review)
					r.Put("/{id}/review", h.Adjustment.Review)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))

				r.Get("/", h.Employee.List)
				r.Get("/stats", h.Employee.Stats)
				r.Get("/{id}", h.Employee.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", h.Auth.Me)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
				})
			})

			r.Route("/companies", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/", h.Company.List)
				r.Post("/", h.Company.Create)
				r.Get("/{id}", h.Company.GetByID)
				r.Put("/{id}", h.Company.Update)
				r.Delete("/{id}", h.Company.Delete)
				r.Post("/{id}/managers", h.Company.CreateManager)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStatsView))
					r.Get("/dashboard", h.Dashboard.GetStats)
				})
				r.Get("/employees/{id}", h.Dashboard.GetEmployeeStats)
			})
		})
	})
	return r
}
