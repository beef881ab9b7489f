package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/RanjitKuMallick/BitCrave/internal/config"
	dbpkg "github.com/RanjitKuMallick/BitCrave/internal/db"
	"github.com/RanjitKuMallick/BitCrave/internal/middleware"
	"github.com/RanjitKuMallick/BitCrave/internal/routes"
	"github.com/RanjitKuMallick/BitCrave/internal/session"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	sessions := session.NewStore(
		rdb,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
	)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, sessions)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
