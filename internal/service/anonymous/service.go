package anonymous

import (
	"context"
	"errors"
	"time"

	tokenrepo "storefront-sync/internal/repository/token"

	"storefront-sync/internal/domain"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Service mints and validates guest tokens. Tokens are persisted so a
// guest's cart and wishlist survive service restarts.
type Service struct {
	repo tokenrepo.Repository
	ttl  time.Duration
}

func New(repo tokenrepo.Repository, ttl time.Duration) *Service {
	return &Service{repo: repo, ttl: ttl}
}

// Issue mints a fresh guest token and the anonymous owner id it scopes.
func (s *Service) Issue(ctx context.Context) (token, ownerID string, err error) {
	tok, err := randomToken()
	if err != nil {
		return "", "", err
	}
	ownerID = uuid.NewString()
	err = s.repo.Create(ctx, tokenrepo.Token{
		Token:     tok,
		OwnerID:   ownerID,
		ExpiresAt: time.Now().Add(s.ttl),
	})
	if err != nil {
		return "", "", err
	}
	return tok, ownerID, nil
}

// TTLSeconds is the token lifetime, for cookie max-age.
func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}

// Resolve maps a presented guest token to its owner id. Expired tokens
// are dropped and read as invalid, prompting a fresh mint.
func (s *Service) Resolve(ctx context.Context, tok string) (string, error) {
	meta, err := s.repo.Get(ctx, tok)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if time.Now().After(meta.ExpiresAt) {
		_ = s.repo.Delete(ctx, tok)
		return "", ErrInvalidToken
	}
	return meta.OwnerID, nil
}
