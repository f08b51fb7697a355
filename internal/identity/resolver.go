package identity

import (
	"log"
	"net/http"
	"sync"
)

// GuestTokenHeader carries the guest token on requests and refreshed
// tokens on responses.
const GuestTokenHeader = "X-Guest-Token"

// Resolver owns the identity attached to every sync call: either a guest
// token or a user credential, never both. The credential always takes
// precedence and suppresses the guest header. Responses are inspected for
// server-issued token refreshes, which are persisted immediately.
type Resolver struct {
	mu         sync.RWMutex
	store      TokenStore
	guestToken string
	credential string
	degraded   bool
	logger     *log.Logger
}

// NewResolver loads any durable guest token at startup. A store failure
// degrades to an in-memory token for the session; this is non-fatal.
func NewResolver(store TokenStore, logger *log.Logger) *Resolver {
	r := &Resolver{store: store, logger: logger}
	if store == nil {
		r.store = NewMemoryStore()
		return r
	}
	token, err := store.Load()
	if err != nil {
		r.degrade("load guest token", err)
		return r
	}
	r.guestToken = token
	return r
}

// Attach sets the identity headers on an outbound request.
func (r *Resolver) Attach(req *http.Request) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.credential != "" {
		req.Header.Set("Authorization", "Bearer "+r.credential)
		return
	}
	if r.guestToken != "" {
		req.Header.Set(GuestTokenHeader, r.guestToken)
	}
}

// Capture inspects a response for a refreshed guest token. It is called
// on every response, error responses included.
func (r *Resolver) Capture(resp *http.Response) {
	if resp == nil {
		return
	}
	r.CaptureToken(resp.Header.Get(GuestTokenHeader))
}

// CaptureToken persists a guest token delivered in a payload field.
// Empty and unchanged tokens are ignored.
func (r *Resolver) CaptureToken(token string) {
	if token == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if token == r.guestToken {
		return
	}
	r.guestToken = token
	if r.degraded {
		return
	}
	if err := r.store.Save(token); err != nil {
		r.degrade("persist guest token", err)
	}
}

// GuestToken returns the current guest token, durable or in-memory.
func (r *Resolver) GuestToken() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guestToken
}

// SetCredential switches to an authenticated identity. The guest-to-user
// hand-off itself is owned by the auth layer; the resolver only swaps
// what gets attached to requests.
func (r *Resolver) SetCredential(cred string) {
	r.mu.Lock()
	r.credential = cred
	r.mu.Unlock()
}

// ClearCredential reverts to the guest identity.
func (r *Resolver) ClearCredential() {
	r.mu.Lock()
	r.credential = ""
	r.mu.Unlock()
}

// Credential returns the active user credential, if any.
func (r *Resolver) Credential() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.credential
}

func (r *Resolver) degrade(op string, err error) {
	if !r.degraded && r.logger != nil {
		r.logger.Printf("%s: %v; continuing with in-memory token", op, err)
	}
	r.degraded = true
}
