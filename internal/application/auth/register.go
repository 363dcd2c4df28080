package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

type RegisterUserResult struct {
	User  *domain.User
	Token string
}

// RegisterUser signs up a new user and issues an access token right away.
type RegisterUser struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	accessExp int64
}

func NewRegisterUser(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, accessExp int64) *RegisterUser {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	return &RegisterUser{users: users, hasher: hasher, issuer: issuer, accessExp: accessExp}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if !emailRegex.MatchString(email) {
		return nil, domerrors.ErrInvalidCredentials
	}
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrUserExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Username:     strings.TrimSpace(strings.ToLower(input.Username)),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.issuer.IssueAccessToken(user.ID.String(), user.Email, uc.accessExp)
	if err != nil {
		return nil, err
	}
	return &RegisterUserResult{User: user, Token: token}, nil
}
