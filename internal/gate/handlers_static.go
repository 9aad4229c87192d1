package gate

import (
	"embed"
	"net/http"
	"path"
	"strings"
)

//go:embed all:public
var publicFS embed.FS

// handleAdminPage serves the admin console. There is deliberately no access
// control here, matching the rest of the admin API.
func (s *Server) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	b, err := publicFS.ReadFile("public/admin.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(b)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, "/public/")
	b, err := publicFS.ReadFile(path.Join("public", p))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if strings.HasSuffix(p, ".html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if strings.HasSuffix(p, ".js") {
		w.Header().Set("Content-Type", "application/javascript")
	}
	if strings.HasSuffix(p, ".css") {
		w.Header().Set("Content-Type", "text/css")
	}
	_, _ = w.Write(b)
}
