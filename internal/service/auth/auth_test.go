package auth

import (
	"context"
	"testing"

	"nexcraft-service/internal/domain/admin"
	xerrors "nexcraft-service/internal/pkg/errors"
	"nexcraft-service/internal/pkg/password"
	"nexcraft-service/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminStore struct {
	byEmail map[string]*admin.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{byEmail: make(map[string]*admin.Admin)}
}

func (f *fakeAdminStore) Create(_ context.Context, a *admin.Admin) error {
	if _, ok := f.byEmail[a.Email]; ok {
		return xerrors.ErrDuplicateEntry
	}
	cp := *a
	f.byEmail[a.Email] = &cp
	return nil
}

func (f *fakeAdminStore) FindByEmail(_ context.Context, email string) (*admin.Admin, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func newTestService(store AdminStore) *Service {
	return NewService(
		store,
		token.NewService("test-secret-key"),
		password.NewHasher(bcrypt.MinCost),
		zap.NewNop(),
	)
}

func TestSignupIssuesUsableToken(t *testing.T) {
	svc := newTestService(newFakeAdminStore())
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &admin.SignupRequest{
		Email: "admin@nexcraft.dev", Password: "hunter22", Name: "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "admin@nexcraft.dev", resp.Admin.Email)
	assert.NotEmpty(t, resp.Admin.ID)

	a, err := svc.ValidateToken(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@nexcraft.dev", a.Email)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService(newFakeAdminStore())
	ctx := context.Background()

	req := &admin.SignupRequest{Email: "admin@nexcraft.dev", Password: "hunter22", Name: "Admin"}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, req)
	assert.ErrorIs(t, err, xerrors.ErrDuplicateEntry)
}

func TestLoginWithCorrectPassword(t *testing.T) {
	svc := newTestService(newFakeAdminStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, &admin.SignupRequest{
		Email: "admin@nexcraft.dev", Password: "hunter22", Name: "Admin",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &admin.LoginRequest{Email: "admin@nexcraft.dev", Password: "hunter22"})
	require.NoError(t, err)

	a, err := svc.ValidateToken(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@nexcraft.dev", a.Email)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	svc := newTestService(newFakeAdminStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, &admin.SignupRequest{
		Email: "admin@nexcraft.dev", Password: "hunter22", Name: "Admin",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &admin.LoginRequest{Email: "admin@nexcraft.dev", Password: "wrong"})
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestLoginUnknownEmailUnauthorized(t *testing.T) {
	svc := newTestService(newFakeAdminStore())

	_, err := svc.Login(context.Background(), &admin.LoginRequest{
		Email: "nobody@nexcraft.dev", Password: "hunter22",
	})
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestValidateTokenGarbageUnauthorized(t *testing.T) {
	svc := newTestService(newFakeAdminStore())

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestValidateTokenForDeletedAdminUnauthorized(t *testing.T) {
	store := newFakeAdminStore()
	svc := newTestService(store)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, &admin.SignupRequest{
		Email: "admin@nexcraft.dev", Password: "hunter22", Name: "Admin",
	})
	require.NoError(t, err)

	delete(store.byEmail, "admin@nexcraft.dev")

	_, err = svc.ValidateToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}
