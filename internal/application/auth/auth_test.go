package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[domain.UserID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[domain.UserID]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	clone := *user
	f.byEmail[user.Email] = &clone
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

var _ ports.UserRepository = (*fakeUserRepo)(nil)

type fakeTokenStore struct {
	byHash map[string]*ports.RefreshTokenInfo
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{byHash: make(map[string]*ports.RefreshTokenInfo)}
}

func (f *fakeTokenStore) StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error {
	f.byHash[tokenHash] = &ports.RefreshTokenInfo{
		TokenID:   tokenHash,
		UserID:    userID,
		ExpiresAt: time.Unix(expiresAt, 0),
	}
	return nil
}

func (f *fakeTokenStore) GetRefreshToken(ctx context.Context, tokenHash string) (*ports.RefreshTokenInfo, error) {
	info, ok := f.byHash[tokenHash]
	if !ok {
		return nil, nil
	}
	clone := *info
	return &clone, nil
}

func (f *fakeTokenStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	if info, ok := f.byHash[tokenHash]; ok && info.RevokedAt == nil {
		now := time.Now()
		info.RevokedAt = &now
	}
	return nil
}

var _ ports.TokenStore = (*fakeTokenStore)(nil)

// plainHasher marks hashes so Verify is an exact-match check.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Verify(password, hash string) bool    { return hash == "hashed:"+password }

type fakeIssuer struct {
	issued []string // "userID email" per issued token
}

func (f *fakeIssuer) IssueAccessToken(userID, email string, expiresInSeconds int64) (string, error) {
	f.issued = append(f.issued, userID+" "+email)
	return fmt.Sprintf("access-%d", len(f.issued)), nil
}

func (f *fakeIssuer) ValidateAccessToken(tokenString string) (string, string, error) {
	var n int
	if _, err := fmt.Sscanf(tokenString, "access-%d", &n); err != nil || n < 1 || n > len(f.issued) {
		return "", "", errors.New("invalid token")
	}
	parts := strings.SplitN(f.issued[n-1], " ", 2)
	return parts[0], parts[1], nil
}

var _ ports.TokenIssuer = (*fakeIssuer)(nil)

func register(t *testing.T, users *fakeUserRepo, email string) *RegisterUserResult {
	t.Helper()
	uc := NewRegisterUser(users, plainHasher{}, &fakeIssuer{}, 0)
	result, err := uc.Execute(context.Background(), RegisterUserInput{
		Username: "someone",
		Email:    email,
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return result
}

func TestRegisterUserStoresHashNotPassword(t *testing.T) {
	users := newFakeUserRepo()
	result := register(t, users, "a@example.com")
	if result.User.PasswordHash == "correct horse" {
		t.Error("password stored in the clear")
	}
	if result.Token == "" {
		t.Error("register should issue an access token")
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	register(t, users, "a@example.com")
	uc := NewRegisterUser(users, plainHasher{}, &fakeIssuer{}, 0)
	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Username: "other",
		Email:    "A@Example.com", // matched case-insensitively
		Password: "pw12345678",
	})
	if !errors.Is(err, domerrors.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestRegisterUserRejectsBadEmail(t *testing.T) {
	uc := NewRegisterUser(newFakeUserRepo(), plainHasher{}, &fakeIssuer{}, 0)
	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Username: "x", Email: "not-an-email", Password: "pw12345678",
	})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	register(t, users, "a@example.com")
	store := newFakeTokenStore()
	uc := NewLogin(users, plainHasher{}, &fakeIssuer{}, store, 0, 0)
	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "wrong"})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if len(store.byHash) != 0 {
		t.Error("no refresh token should be stored for a failed login")
	}
}

func TestLoginStoresHashedRefreshToken(t *testing.T) {
	users := newFakeUserRepo()
	register(t, users, "a@example.com")
	store := newFakeTokenStore()
	uc := NewLogin(users, plainHasher{}, &fakeIssuer{}, store, 0, 0)
	result, err := uc.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.ExpiresIn != DefaultAccessTokenExpiry {
		t.Errorf("expiresIn = %d, want default %d", result.ExpiresIn, DefaultAccessTokenExpiry)
	}
	// The raw token is returned to the client and only its hash is stored.
	if _, ok := store.byHash[result.RefreshToken]; ok {
		t.Error("refresh token stored in the clear")
	}
	if _, ok := store.byHash[hashForStorage(result.RefreshToken)]; !ok {
		t.Error("hashed refresh token missing from store")
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	users := newFakeUserRepo()
	register(t, users, "a@example.com")
	store := newFakeTokenStore()
	login := NewLogin(users, plainHasher{}, &fakeIssuer{}, store, 0, 0)
	loggedIn, err := login.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refresh := NewRefresh(users, &fakeIssuer{}, store, 0, 0)
	rotated, err := refresh.Execute(context.Background(), RefreshInput{RefreshToken: loggedIn.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.RefreshToken == loggedIn.RefreshToken {
		t.Error("refresh must issue a new token")
	}

	// Reusing the rotated-out token fails.
	_, err = refresh.Execute(context.Background(), RefreshInput{RefreshToken: loggedIn.RefreshToken})
	if !errors.Is(err, domerrors.ErrInvalidRefresh) {
		t.Fatalf("reuse err = %v, want ErrInvalidRefresh", err)
	}
}

func TestRefreshExpiredToken(t *testing.T) {
	users := newFakeUserRepo()
	result := register(t, users, "a@example.com")
	store := newFakeTokenStore()
	hash := hashForStorage("stale")
	store.byHash[hash] = &ports.RefreshTokenInfo{
		TokenID:   hash,
		UserID:    result.User.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	refresh := NewRefresh(users, &fakeIssuer{}, store, 0, 0)
	_, err := refresh.Execute(context.Background(), RefreshInput{RefreshToken: "stale"})
	if !errors.Is(err, domerrors.ErrInvalidRefresh) {
		t.Fatalf("err = %v, want ErrInvalidRefresh", err)
	}
}

func TestRefreshUnknownToken(t *testing.T) {
	refresh := NewRefresh(newFakeUserRepo(), &fakeIssuer{}, newFakeTokenStore(), 0, 0)
	_, err := refresh.Execute(context.Background(), RefreshInput{RefreshToken: "never issued"})
	if !errors.Is(err, domerrors.ErrInvalidRefresh) {
		t.Fatalf("err = %v, want ErrInvalidRefresh", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	users := newFakeUserRepo()
	register(t, users, "a@example.com")
	store := newFakeTokenStore()
	login := NewLogin(users, plainHasher{}, &fakeIssuer{}, store, 0, 0)
	loggedIn, err := login.Execute(context.Background(), LoginInput{Email: "a@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	logout := NewLogout(store)
	if err := logout.Execute(context.Background(), loggedIn.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	refresh := NewRefresh(users, &fakeIssuer{}, store, 0, 0)
	_, err = refresh.Execute(context.Background(), RefreshInput{RefreshToken: loggedIn.RefreshToken})
	if !errors.Is(err, domerrors.ErrInvalidRefresh) {
		t.Fatalf("post-logout refresh err = %v, want ErrInvalidRefresh", err)
	}
}

func TestLogoutEmptyTokenIsNoop(t *testing.T) {
	logout := NewLogout(newFakeTokenStore())
	if err := logout.Execute(context.Background(), ""); err != nil {
		t.Fatalf("empty logout: %v", err)
	}
}
