package anonymous

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-sync/internal/domain"

	tokenrepo "storefront-sync/internal/repository/token"
)

type stubTokenRepo struct {
	tokens  map[string]tokenrepo.Token
	deleted []string
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (s *stubTokenRepo) Create(_ context.Context, tok tokenrepo.Token) error {
	if _, ok := s.tokens[tok.Token]; ok {
		return domain.ErrAlreadyExists
	}
	s.tokens[tok.Token] = tok
	return nil
}

func (s *stubTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	tok, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &tok, nil
}

func (s *stubTokenRepo) Delete(_ context.Context, token string) error {
	delete(s.tokens, token)
	s.deleted = append(s.deleted, token)
	return nil
}

func TestIssueMintsDistinctTokens(t *testing.T) {
	repo := newStubTokenRepo()
	svc := New(repo, time.Hour)

	tok1, owner1, err := svc.Issue(context.Background())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tok2, owner2, err := svc.Issue(context.Background())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok1 == "" || tok1 == tok2 {
		t.Fatalf("expected distinct non-empty tokens, got %q and %q", tok1, tok2)
	}
	if owner1 == owner2 {
		t.Fatalf("expected distinct owners, got %q twice", owner1)
	}
	if len(repo.tokens) != 2 {
		t.Fatalf("expected both tokens persisted, got %d", len(repo.tokens))
	}
}

func TestResolveReturnsOwner(t *testing.T) {
	repo := newStubTokenRepo()
	svc := New(repo, time.Hour)

	tok, owner, err := svc.Issue(context.Background())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	got, err := svc.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != owner {
		t.Fatalf("expected owner %q, got %q", owner, got)
	}
}

func TestResolveUnknownTokenIsInvalid(t *testing.T) {
	svc := New(newStubTokenRepo(), time.Hour)

	_, err := svc.Resolve(context.Background(), "nope")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolveExpiredTokenIsDropped(t *testing.T) {
	repo := newStubTokenRepo()
	svc := New(repo, time.Hour)

	repo.tokens["stale"] = tokenrepo.Token{
		Token:     "stale",
		OwnerID:   "owner-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.Resolve(context.Background(), "stale")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "stale" {
		t.Fatalf("expected the stale token deleted, got %v", repo.deleted)
	}
}

func TestTTLSeconds(t *testing.T) {
	svc := New(newStubTokenRepo(), 90*time.Minute)
	if got := svc.TTLSeconds(); got != 5400 {
		t.Fatalf("expected 5400, got %d", got)
	}
}
