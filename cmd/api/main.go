package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/findmychef/chef-marketplace/internal/cache"
	"github.com/findmychef/chef-marketplace/internal/config"
	dbpkg "github.com/findmychef/chef-marketplace/internal/db"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	"github.com/findmychef/chef-marketplace/internal/routes"
	"github.com/findmychef/chef-marketplace/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var store cache.Cache = cache.NewNoop()
	if cfg.RedisEnabled() {
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("redis unreachable, caching disabled: %v", err)
		} else {
			store = redisCache
		}
		cancel()
	}

	var photos *storage.PhotoStore
	if cfg.S3Enabled() {
		photos = storage.NewPhotoStore(cfg)
	} else {
		log.Println("S3 not configured, photo upload disabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterRoutes(r, db, cfg, store, photos)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
