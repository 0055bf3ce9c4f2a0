package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/handler/http/middleware"
	"github.com/jacklittlebird-ui/hr-erp-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	loanHandler LoanHandler,
	advanceHandler AdvanceHandler,
	mobileBillHandler MobileBillHandler,
	uniformHandler UniformHandler,
	trainingHandler TrainingHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-erp-backend"),
		slog.String("version", "v1.0.0"),
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/loans", func(r chi.Router) {
				r.Post("/", loanHandler.Create)
				r.Get("/employee/{employeeID}", loanHandler.ListByEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", loanHandler.Get)
					r.Put("/", loanHandler.Edit)
					r.Delete("/", loanHandler.Delete)
					r.Get("/schedule", loanHandler.Schedule)
					r.Post("/payments", loanHandler.RecordPayment)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", advanceHandler.Create)
				r.Get("/employee/{employeeID}", advanceHandler.ListByEmployee)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", advanceHandler.Get)
					r.Delete("/", advanceHandler.Delete)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/approve", advanceHandler.Approve)
						r.Post("/reject", advanceHandler.Reject)
					})
				})
			})

			r.Route("/mobile-bills", func(r chi.Router) {
				r.Post("/upload", mobileBillHandler.Upload)
				r.Get("/", mobileBillHandler.ListByMonth)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", mobileBillHandler.Get)
					r.Delete("/", mobileBillHandler.Delete)
				})
			})

			r.Route("/uniforms", func(r chi.Router) {
				r.Post("/", uniformHandler.Create)
				r.Get("/employee/{employeeID}", uniformHandler.ListByEmployee)
				r.Get("/depreciation", uniformHandler.DepreciationReport)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", uniformHandler.Get)
					r.Delete("/", uniformHandler.Delete)
				})
			})

			r.Route("/training", func(r chi.Router) {
				r.Route("/courses", func(r chi.Router) {
					r.Post("/", trainingHandler.AssignCourse)
					r.Get("/employee/{employeeID}", trainingHandler.ListCoursesByEmployee)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", trainingHandler.GetCourse)
						r.Post("/actual", trainingHandler.RecordActual)
					})
				})
				r.Route("/debts", func(r chi.Router) {
					r.Get("/", trainingHandler.ListActiveDebts)
					r.Get("/employee/{employeeID}", trainingHandler.ListDebtsByEmployee)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/entries", payrollHandler.ListEntriesByPeriod)
				r.Get("/entries/{id}", payrollHandler.GetEntry)
				r.Get("/deductions/{employeeID}", payrollHandler.DeductionSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/run", payrollHandler.Run)
					r.Delete("/entries/{id}", payrollHandler.DeleteEntry)
				})
			})
		})
	})
	return r
}
