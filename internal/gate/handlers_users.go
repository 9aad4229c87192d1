package gate

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := s.db.Query(ctx, `
		SELECT username, created_at
		FROM m3u_users
		ORDER BY created_at DESC
	`)
	if err != nil {
		log.Printf("m3u-gate: list users: %v", err)
		writeFail(w, http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.CreatedAt); err != nil {
			log.Printf("m3u-gate: list users scan: %v", err)
			writeFail(w, http.StatusInternalServerError)
			return
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		log.Printf("m3u-gate: list users rows: %v", err)
		writeFail(w, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"users": users,
	})
}

// handleUpsertUser inserts a credential or, when the username already
// exists, replaces only its password. created_at is set once at insert and
// survives later password changes.
func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body upsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, http.StatusBadRequest)
		return
	}

	// Credentials are opaque strings, no trimming or normalization; only
	// missing/empty fields are rejected.
	if body.Username == "" || body.Password == "" {
		writeFail(w, http.StatusBadRequest)
		return
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO m3u_users (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username)
		DO UPDATE SET password = EXCLUDED.password
	`, body.Username, body.Password)
	if err != nil {
		log.Printf("m3u-gate: upsert user: %v", err)
		writeFail(w, http.StatusInternalServerError)
		return
	}

	s.publishEvent(ctx, "user.saved", map[string]any{"username": body.Username})

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := chi.URLParam(r, "username")

	tag, err := s.db.Exec(ctx, `DELETE FROM m3u_users WHERE username = $1`, username)
	if err != nil {
		log.Printf("m3u-gate: delete user: %v", err)
		writeFail(w, http.StatusInternalServerError)
		return
	}

	if tag.RowsAffected() > 0 {
		s.publishEvent(ctx, "user.deleted", map[string]any{"username": username})
	}

	// Deleting a missing user is fine, deleted just reports 0.
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"deleted": tag.RowsAffected(),
	})
}
