package auth

import (
	"context"
	"time"

	"taskboard/internal/application/ports"
	domerrors "taskboard/internal/domain/errors"
)

type RefreshInput struct {
	RefreshToken string
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. A revoked or expired token is rejected.
type Refresh struct {
	users      ports.UserRepository
	issuer     ports.TokenIssuer
	tokenStore ports.TokenStore
	accessExp  int64
	refreshExp int64
}

func NewRefresh(users ports.UserRepository, issuer ports.TokenIssuer, tokenStore ports.TokenStore, accessExp, refreshExp int64) *Refresh {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	if refreshExp <= 0 {
		refreshExp = DefaultRefreshTokenExpiry
	}
	return &Refresh{
		users:      users,
		issuer:     issuer,
		tokenStore: tokenStore,
		accessExp:  accessExp,
		refreshExp: refreshExp,
	}
}

func (uc *Refresh) Execute(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	if input.RefreshToken == "" {
		return nil, domerrors.ErrInvalidRefresh
	}
	tokenHash := hashForStorage(input.RefreshToken)
	info, err := uc.tokenStore.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	if info == nil || info.RevokedAt != nil || time.Now().After(info.ExpiresAt) {
		return nil, domerrors.ErrInvalidRefresh
	}
	user, err := uc.users.GetByID(ctx, info.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrInvalidRefresh
	}
	if err := uc.tokenStore.RevokeRefreshToken(ctx, tokenHash); err != nil {
		return nil, err
	}
	accessToken, err := uc.issuer.IssueAccessToken(user.ID.String(), user.Email, uc.accessExp)
	if err != nil {
		return nil, err
	}
	newRefresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(time.Duration(uc.refreshExp) * time.Second).Unix()
	if err := uc.tokenStore.StoreRefreshToken(ctx, user.ID, hashForStorage(newRefresh), expiresAt); err != nil {
		return nil, err
	}
	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    uc.accessExp,
	}, nil
}

// Logout revokes a refresh token. Unknown tokens are a no-op.
type Logout struct {
	tokenStore ports.TokenStore
}

func NewLogout(tokenStore ports.TokenStore) *Logout {
	return &Logout{tokenStore: tokenStore}
}

func (uc *Logout) Execute(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return uc.tokenStore.RevokeRefreshToken(ctx, hashForStorage(refreshToken))
}
