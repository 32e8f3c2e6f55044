package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"epms/internal/domain/account"
	"epms/internal/domain/deduction"
	"epms/internal/domain/employee"
	"epms/internal/domain/employment"
	"epms/internal/domain/message"
	"epms/internal/domain/payslip"
	"epms/internal/platform/config"
	"epms/internal/platform/db"
	"epms/internal/platform/email"
	"epms/internal/platform/pdf"
	authhandler "epms/internal/transport/http/handlers/auth"
	deductionhandler "epms/internal/transport/http/handlers/deduction"
	employeehandler "epms/internal/transport/http/handlers/employee"
	employmenthandler "epms/internal/transport/http/handlers/employment"
	messagehandler "epms/internal/transport/http/handlers/message"
	paysliphandler "epms/internal/transport/http/handlers/payslip"
	"epms/internal/transport/http/middleware"
)

// NewRouter assembles the full HTTP surface against the given pool.
func NewRouter(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) http.Handler {
	employeeStore := employee.NewStore(pool)
	employmentStore := employment.NewStore(pool)
	deductionStore := deduction.NewStore(pool)
	messageStore := message.NewStore(pool)
	payslipStore := payslip.NewStore(pool)

	employeeSvc := employee.NewService(employeeStore)
	employmentSvc := employment.NewService(employmentStore)
	deductionSvc := deduction.NewService(deductionStore)
	messageSvc := message.NewService(messageStore)
	accountSvc := account.NewService(employeeStore, cfg.JWTSecret, cfg.TokenTTL)
	payslipSvc := payslip.NewService(payslipStore, messageSvc, email.New(cfg), pdf.NewRenderer(), cfg.MinPayslipYear, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(accountSvc)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/auth/register/employee", authHandler.HandleRegisterEmployee)
			r.Post("/auth/register/manager", authHandler.HandleRegisterManager)
			r.Post("/auth/register/admin", authHandler.HandleRegisterAdmin)

			employeeHandler := employeehandler.NewHandler(employeeSvc)
			r.Get("/employees", employeeHandler.HandleList)
			r.Get("/employees/{code}", employeeHandler.HandleGet)
			r.Put("/employees/{code}", employeeHandler.HandleUpdate)
			r.Delete("/employees/{code}", employeeHandler.HandleDelete)

			employmentHandler := employmenthandler.NewHandler(employmentSvc)
			r.Post("/employments", employmentHandler.HandleCreate)
			r.Get("/employments", employmentHandler.HandleListActive)
			r.Get("/employments/{code}", employmentHandler.HandleGet)
			r.Put("/employments/{code}", employmentHandler.HandleUpdate)
			r.Get("/employments/employee/{employeeCode}", employmentHandler.HandleActiveByEmployee)

			deductionHandler := deductionhandler.NewHandler(deductionSvc)
			r.Post("/deductions", deductionHandler.HandleCreate)
			r.Get("/deductions", deductionHandler.HandleList)
			r.Get("/deductions/{code}", deductionHandler.HandleGet)
			r.Put("/deductions/{code}", deductionHandler.HandleUpdate)
			r.Delete("/deductions/{code}", deductionHandler.HandleDelete)
			r.Get("/deductions/employee/{employeeCode}", deductionHandler.HandleListForEmployee)

			payslipHandler := paysliphandler.NewHandler(payslipSvc, employmentSvc)
			r.Post("/payslips/generate", payslipHandler.HandleGenerate)
			r.Post("/payslips/generate-all", payslipHandler.HandleGenerateAll)
			r.Put("/payslips/{id}/approve", payslipHandler.HandleApprove)
			r.Get("/payslips/pending", payslipHandler.HandleListPending)
			r.Get("/payslips/employee/{employeeCode}", payslipHandler.HandleListByEmployee)
			r.Get("/payslips/{id}/download", payslipHandler.HandleDownload)

			messageHandler := messagehandler.NewHandler(messageSvc)
			r.Get("/messages/employee/{employeeCode}", messageHandler.HandleListByEmployee)
			r.Get("/messages/employee/{employeeCode}/unread", messageHandler.HandleListUnread)
			r.Get("/messages/employee/{employeeCode}/unread/count", messageHandler.HandleCountUnread)
			r.Put("/messages/{id}/read", messageHandler.HandleMarkRead)
		})
	})

	return router
}

// Run boots the server: config, pool, migrations, router, listener.
func Run() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			logger.Error("migrations failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	router := NewRouter(cfg, pool, logger)

	logger.Info("server listening", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
