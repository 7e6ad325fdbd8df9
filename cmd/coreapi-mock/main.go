// coreapi-mock serves a fake core platform so the dashboard can run
// without the real lending backend. Log in with admin / admin123.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moncredit/admin-dashboard/internal/config"
	"github.com/moncredit/admin-dashboard/internal/mockapi"
)

func main() {
	config.Init()

	srv, err := mockapi.New("admin123", 120, 80, 30)
	if err != nil {
		log.Fatalf("Failed to build mock data: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Mount("/", srv.Router())

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Mock core API listening on :%s (admin / admin123)", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
