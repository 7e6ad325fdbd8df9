package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"

	"github.com/moncredit/admin-dashboard/internal/audit"
	"github.com/moncredit/admin-dashboard/internal/config"
	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/database"
	"github.com/moncredit/admin-dashboard/internal/handlers"
	mW "github.com/moncredit/admin-dashboard/internal/middleware"
	"github.com/moncredit/admin-dashboard/internal/session"
)

func main() {
	config.Init()

	auditDB := database.InitAuditDB()
	if auditDB != nil {
		defer auditDB.Close()
	}

	redisClient := database.InitRedis()
	defer redisClient.Close()

	renderer, err := handlers.NewRenderer("./web/templates")
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	r := chi.NewRouter()

	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(mW.Metrics)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Handle("/static/*", http.StripPrefix("/static/",
		mW.StaticFileServer("./web/static")))

	r.Mount("/", handlers.Routes(handlers.Deps{
		Renderer: renderer,
		Sessions: session.NewStore(redisClient),
		Audit:    audit.NewLogger(auditDB),
		Client:   core.NewClient(),
	}))

	port := viper.GetString("server.port")

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Admin dashboard starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
