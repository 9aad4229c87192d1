package gate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	db           DB
	rdb          *redis.Client
	playlistPath string
}

func NewServer(db DB, rdb *redis.Client, playlistPath string) *Server {
	return &Server{
		db:           db,
		rdb:          rdb,
		playlistPath: playlistPath,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/", s.handleHealth)

	r.Get("/admin", s.handleAdminPage)
	r.Get("/public/*", s.handleStatic)

	r.Get("/playlist.m3u", s.handlePlaylist)
	r.Get("/{user}/{pass}.m3u", s.handleGatedPlaylist)

	r.Get("/api/users", s.handleListUsers)
	r.Post("/api/users", s.handleUpsertUser)
	r.Delete("/api/users/{username}", s.handleDeleteUser)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
