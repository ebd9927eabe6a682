package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/mahiganga/marketplace-backend/internal/auth"
	"github.com/mahiganga/marketplace-backend/internal/config"
	"github.com/mahiganga/marketplace-backend/internal/leads"
	"github.com/mahiganga/marketplace-backend/internal/media"
	"github.com/mahiganga/marketplace-backend/internal/store"
	"github.com/mahiganga/marketplace-backend/internal/vehicles"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// ── Record store ─────────────────────────────────────────
	var userStore auth.UserStore
	var vehicleStore vehicles.VehicleStore
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		pgStore := store.NewPostgresStore(pool)
		if err := pgStore.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		userStore, vehicleStore = pgStore, pgStore
	} else {
		fileStore := store.NewFileStore(cfg.DBFile)
		userStore, vehicleStore = fileStore, fileStore
		log.Printf("DATABASE_URL not set, using file store at %s", cfg.DBFile)
	}

	// ── Media host ───────────────────────────────────────────
	var uploader media.Uploader
	if cfg.HasMediaCredentials() {
		mediaStore, err := store.NewMediaStore(
			ctx, cfg.MediaEndpoint, cfg.MediaAccessKey,
			cfg.MediaSecretKey, cfg.MediaBucket, cfg.MediaUseSSL, cfg.MediaPublicURL,
		)
		if err != nil {
			log.Fatalf("media connect: %v", err)
		}
		uploader = mediaStore
	} else {
		log.Println("media credentials not set, uploads disabled")
	}

	// ── Lead log ─────────────────────────────────────────────
	leadLog := leads.NewLog(cfg.LeadsFile)

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(userStore)
	vehicleHandler := vehicles.NewHandler(vehicleStore)
	leadHandler := leads.NewHandler(leadLog)
	mediaHandler := media.NewHandler(uploader)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", vehicleHandler.List)
			r.Post("/", vehicleHandler.Create)
			r.Get("/{id}", vehicleHandler.Get)
			r.Put("/{id}", vehicleHandler.Update)
			r.Delete("/{id}", vehicleHandler.Delete)
		})

		r.Post("/sell-requests", leadHandler.Submit)
		r.Post("/upload", mediaHandler.Upload)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
