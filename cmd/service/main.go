package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"m3u-gate/internal/gate"
)

func main() {
	port := getenv("PORT", "3000")
	playlistPath := getenv("PLAYLIST_PATH", "playlist.m3u")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("m3u-gate: DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("m3u-gate: pg: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("m3u-gate: pg ping: %v", err)
	}

	if err := gate.AutoMigrate(ctx, pool); err != nil {
		log.Fatalf("m3u-gate: migrate: %v", err)
	}

	// Events are optional; without REDIS_URL the server simply does not
	// publish any.
	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("m3u-gate: redis: %v", err)
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
	}

	srv := gate.NewServer(pool, rdb, playlistPath)
	r := srv.Router(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)

	log.Printf("m3u-gate on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("m3u-gate: listen: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
