package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/api/internal/clock"
	"github.com/barberbook/api/internal/config"
	dbpkg "github.com/barberbook/api/internal/db"
	"github.com/barberbook/api/internal/middleware"
	"github.com/barberbook/api/internal/routes"
)

func main() {

	cfg := config.Load()
	clock.Configure(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	if cfg.Seed {
		dbpkg.Seed(db)
	}

	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
