package http

import (
	"log/slog"
	"os"

	"github.com/absensi-rfid/attendance-backend-go/internal/handler/http/middleware"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-rfid"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// RFID readers post scans without a user session
		r.Post("/attendance/scan", attendanceHandler.Scan)

		// Requires authentication; mutating routes additionally require the
		// admin role
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.With(middleware.AdminOnly).Post("/", employeeHandler.CreateEmployee)
				r.Get("/tenure", employeeHandler.ListTenure)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetEmployee)
					r.With(middleware.AdminOnly).Put("/", employeeHandler.UpdateEmployee)
					r.With(middleware.AdminOnly).Delete("/", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", masterHandler.ListPositions)
				r.With(middleware.AdminOnly).Post("/", masterHandler.CreatePosition)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", masterHandler.GetPosition)
					r.With(middleware.AdminOnly).Put("/", masterHandler.UpdatePosition)
					r.With(middleware.AdminOnly).Delete("/", masterHandler.DeletePosition)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", attendanceHandler.Get)
					r.With(middleware.AdminOnly).Put("/", attendanceHandler.Update)
					r.With(middleware.AdminOnly).Delete("/", attendanceHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.With(middleware.AdminOnly).Post("/generate", payrollHandler.GeneratePayroll)
				r.Route("/reports", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayroll)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", payrollHandler.GetPayroll)
						r.With(middleware.AdminOnly).Put("/", payrollHandler.UpdatePayroll)
						r.With(middleware.AdminOnly).Delete("/", payrollHandler.DeletePayroll)
					})
				})
			})

			r.Get("/dashboard", dashboardHandler.GetDashboard)
		})
	})
	return r
}
