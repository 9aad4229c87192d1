package gate

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// sendPlaylist serves the playlist file as a forced download. The file is
// re-read on every request so edits on disk show up without a restart.
func (s *Server) sendPlaylist(w http.ResponseWriter) {
	content, err := os.ReadFile(s.playlistPath)
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "playlist.m3u not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("m3u-gate: read playlist: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="playlist.m3u"`)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(content)
}

func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	s.sendPlaylist(w)
}

// handleGatedPlaylist serves the playlist only when the username/password
// pair from the path matches a stored credential exactly.
func (s *Server) handleGatedPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := chi.URLParam(r, "user")
	pass := chi.URLParam(r, "pass")

	var one int
	err := s.db.QueryRow(ctx, `
		SELECT 1 FROM m3u_users WHERE username = $1 AND password = $2
	`, user, pass).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		http.Error(w, "invalid username or password", http.StatusForbidden)
		return
	}
	if err != nil {
		log.Printf("m3u-gate: credential check: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.sendPlaylist(w)
}
