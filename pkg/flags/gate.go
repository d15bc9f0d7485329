package flags

import "net/http"

// UserIDHeader carries the user identifier for server-side gating.
const UserIDHeader = "X-User-Id"

// Gate binds a Service to a single flag and optional user context, so
// call sites can pick between a primary and a fallback rendition
// without repeating the lookup plumbing.
type Gate struct {
	service Service
	flag    Flag
	userID  string
}

func NewGate(service Service, flag Flag) Gate {
	return Gate{
		service: service,
		flag:    flag,
	}
}

// ForUser returns a copy of the gate evaluating in the context of the
// given user identifier.
func (g Gate) ForUser(userID string) Gate {
	g.userID = userID
	return g
}

func (g Gate) Enabled() bool {
	if g.userID == "" {
		return g.service.IsEnabled(g.flag)
	}
	return g.service.IsEnabledForUser(g.flag, g.userID)
}

// Choose returns primary when the gate is open and fallback otherwise.
func Choose[T any](g Gate, primary T, fallback T) T {
	if g.Enabled() {
		return primary
	}
	return fallback
}

// Handler routes requests to primary or fallback based on the gate,
// evaluated per request against the UserIDHeader value when present.
func (g Gate) Handler(primary http.Handler, fallback http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gate := g.ForUser(r.Header.Get(UserIDHeader))
		Choose(gate, primary, fallback).ServeHTTP(w, r)
	})
}
