package gate

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFail is the generic failure body of the admin API. Detail stays in
// the server log, never in the response.
func writeFail(w http.ResponseWriter, status int) {
	writeJSON(w, status, map[string]bool{
		"ok": false,
	})
}
