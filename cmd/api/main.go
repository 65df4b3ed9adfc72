package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/su-physio/clinic-scheduler/internal/config"
	"github.com/su-physio/clinic-scheduler/internal/handlers"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	kv, err := kvstore.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open record store: %v", err)
	}

	// Session pointers are per-tab hints. They live in memory on purpose;
	// losing them on restart only sends the visitor back to the lookup form.
	ephemeral := kvstore.NewMemoryStore()

	if err := handlers.NewAuthHandler(kv, cfg).EnsureDefaultAdmin(context.Background()); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, kv, ephemeral, cfg)
	defer dispatcher.Close()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
