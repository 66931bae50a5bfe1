package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"slipgen/internal/domain/auth"
	"slipgen/internal/domain/drafts"
	"slipgen/internal/domain/payslip"
	"slipgen/internal/domain/profiles"
	"slipgen/internal/platform/config"
	"slipgen/internal/platform/db"
	"slipgen/internal/platform/jobs"
	"slipgen/internal/platform/metrics"
	"slipgen/internal/platform/secrets"
	authhandler "slipgen/internal/transport/http/handlers/auth"
	draftshandler "slipgen/internal/transport/http/handlers/drafts"
	paysliphandler "slipgen/internal/transport/http/handlers/payslip"
	profileshandler "slipgen/internal/transport/http/handlers/profiles"
	"slipgen/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	cipher, err := secrets.New(cfg.DraftEncryptionKey)
	if err != nil {
		log.Fatalf("draft cipher setup failed: %v", err)
	}

	payslipService := payslip.NewService(payslip.NewStore(pool))
	draftService := drafts.NewService(drafts.NewStore(pool), cipher, cfg.DraftTTL)

	jobs.New(draftService, cfg.DraftPruneInterval).Start(ctx)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

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

	if collector != nil {
		router.Get("/metricsz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			writeMetrics(w, collector)
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(auth.NewStore(pool), cfg.JWTSecret, cfg.TokenTTL)
		authHandler.RegisterRoutes(r)

		payslipHandler := paysliphandler.NewHandler(payslipService, collector, middleware.NewIdempotencyStore(pool), cfg.DefaultCurrency)
		payslipHandler.RegisterRoutes(r)

		draftsHandler := draftshandler.NewHandler(draftService)
		draftsHandler.RegisterRoutes(r)

		profilesHandler := profileshandler.NewHandler(profiles.NewStore(pool))
		profilesHandler.RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	log.Printf("slipgen server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func writeMetrics(w http.ResponseWriter, collector *metrics.Collector) {
	if err := json.NewEncoder(w).Encode(collector.Snapshot()); err != nil {
		http.Error(w, "failed to encode metrics", http.StatusInternalServerError)
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
