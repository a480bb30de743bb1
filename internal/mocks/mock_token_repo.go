package mocks

import (
	"context"

	"github.com/filmbox/movie-catalog/internal/domain"
)

type MockTokenRepo struct {
	domain.TokenRepository
	DeleteAllForUserFunc func(ctx context.Context, tokenScope string, userID int) error
}

func (m *MockTokenRepo) DeleteAllForUser(ctx context.Context, tokenScope string, userID int) error {
	return m.DeleteAllForUserFunc(ctx, tokenScope, userID)
}
