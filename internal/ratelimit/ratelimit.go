package ratelimit

import (
	"context"
	"time"
)

type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter is a fixed-window counter keyed by caller identity. A limit of
// zero or less disables limiting for the call.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}

// LoginKey scopes a window to one username from one client address. Keying
// on the pair keeps an attacker from exhausting someone else's attempts
// remotely, and keeps clients behind a shared NAT from pooling into one
// counter.
func LoginKey(username, clientIP string) string {
	return "login:" + username + ":" + clientIP
}
