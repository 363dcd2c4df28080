package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	"taskboard/internal/infrastructure/persistence/db"
)

type TokenStore struct {
	q *db.Queries
}

func NewTokenStore(q *db.Queries) *TokenStore {
	return &TokenStore{q: q}
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error {
	_, err := s.q.CreateRefreshToken(ctx, db.CreateRefreshTokenParams{
		ID:        uuid.New(),
		UserID:    userID.UUID,
		TokenHash: tokenHash,
		ExpiresAt: time.Unix(expiresAt, 0),
		CreatedAt: time.Now(),
	})
	return err
}

func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenHash string) (*ports.RefreshTokenInfo, error) {
	r, err := s.q.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	info := &ports.RefreshTokenInfo{
		TokenID:   r.ID.String(),
		UserID:    domain.NewUserID(r.UserID),
		ExpiresAt: r.ExpiresAt,
	}
	if r.RevokedAt.Valid {
		t := r.RevokedAt.Time
		info.RevokedAt = &t
	}
	return info, nil
}

func (s *TokenStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	return s.q.RevokeRefreshToken(ctx, tokenHash)
}

// Ensure TokenStore implements ports.TokenStore.
var _ ports.TokenStore = (*TokenStore)(nil)
