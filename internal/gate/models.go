package gate

import (
	"time"
)

// User is one m3u account. The stored password is intentionally never part
// of this model: the listing API must not return it.
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type upsertUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
