package service

import (
	"testing"

	"github.com/maldura7/clover-inventory-system/internal/model"
	"github.com/maldura7/clover-inventory-system/internal/repository"
	"github.com/maldura7/clover-inventory-system/internal/testutil"
	"github.com/maldura7/clover-inventory-system/pkg/apperr"
	"github.com/maldura7/clover-inventory-system/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	jwt.SetSecret("test-secret")
	db := testutil.OpenDB(t)
	return NewAuthService(repository.NewUserRepo(db))
}

func TestRegisterLoginProfile(t *testing.T) {
	svc := newAuthService(t)

	reg, err := svc.Register("a@b.com", "pw123456", "A")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "a@b.com", reg.User.Email)
	assert.Equal(t, model.RoleUser, reg.User.Role)

	login, err := svc.Login("a@b.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	claims, err := jwt.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	profile, err := svc.Profile(claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, "A", profile.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("dup@example.com", "pw123456", "First")
	require.NoError(t, err)

	_, err = svc.Register("dup@example.com", "other-pw", "Second")
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 409, e.Status)
	assert.Equal(t, "Email already exists", e.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register("c@d.com", "correct-pw", "C")
	require.NoError(t, err)

	_, err = svc.Login("c@d.com", "wrong-pw")
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 401, e.Status)
	assert.Equal(t, "Invalid credentials", e.Message)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("nobody@example.com", "whatever")
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 401, e.Status)
	assert.Equal(t, "Invalid credentials", e.Message, "unknown email and bad password are indistinguishable")
}
