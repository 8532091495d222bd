package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/asset-ledger-api/internal/application/auth"
	"github.com/jhoicas/asset-ledger-api/internal/application/dto"
	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
	"github.com/jhoicas/asset-ledger-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeBaseRepo struct{ bases map[int64]*entity.Base }

func (f *fakeBaseRepo) GetByID(_ context.Context, id int64) (*entity.Base, error) {
	b, ok := f.bases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeBaseRepo) List(_ context.Context) ([]*entity.Base, error) { return nil, nil }

func int64ptr(v int64) *int64 { return &v }

func newUseCase(t *testing.T) (*auth.UseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("commander-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUserRepo{users: map[int64]*entity.User{
		2: {
			ID:           2,
			Username:     "cmd.bravo",
			FullName:     "Cmdr. Rivera",
			PasswordHash: string(hash),
			Role:         scope.RoleBaseCommander,
			BaseID:       int64ptr(2),
			IsActive:     true,
		},
	}}
	bases := &fakeBaseRepo{bases: map[int64]*entity.Base{
		2: {ID: 2, Name: "Fort Bravo"},
	}}
	cfg := auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "asset-ledger-api"}
	return auth.NewUseCase(users, bases, cfg), users
}

func TestLogin_IssuesTokenWithScopeClaims(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "cmd.bravo", Password: "commander-pass"})
	require.NoError(t, err)
	assert.Equal(t, "cmd.bravo", resp.User.Username)
	assert.Equal(t, "Fort Bravo", resp.User.BaseName)

	claims, err := jwt.Parse("test-secret", resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
	assert.Equal(t, scope.RoleBaseCommander, claims.Role)
	require.NotNil(t, claims.BaseID)
	assert.Equal(t, int64(2), *claims.BaseID)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	uc, _ := newUseCase(t)

	_, errWrong := uc.Login(context.Background(), dto.LoginRequest{Username: "cmd.bravo", Password: "nope"})
	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "nope"})

	assert.ErrorIs(t, errWrong, domain.ErrUnauthorized)
	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
}

func TestLogin_InactiveUserForbidden(t *testing.T) {
	uc, users := newUseCase(t)
	users.users[2].IsActive = false

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "cmd.bravo", Password: "commander-pass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_MissingCredentials(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: " ", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword_VerifiesOldBeforeUpdating(t *testing.T) {
	uc, users := newUseCase(t)

	err := uc.ChangePassword(context.Background(), 2, dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword(context.Background(), 2, dto.ChangePasswordRequest{
		OldPassword: "commander-pass",
		NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.users[2].PasswordHash), []byte("brand-new-pass")))
}

func TestChangePassword_RejectsShortPassword(t *testing.T) {
	uc, _ := newUseCase(t)

	err := uc.ChangePassword(context.Background(), 2, dto.ChangePasswordRequest{
		OldPassword: "commander-pass",
		NewPassword: "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
