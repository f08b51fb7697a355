package token

import (
	"context"
	"time"
)

// Token is a minted guest token and the anonymous owner it scopes.
type Token struct {
	Token     string
	OwnerID   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, token Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
