package service

import (
	"context"
	"testing"
	"time"

	"github.com/paroquia-on/server/internal/config"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	findByEmailFn     func(ctx context.Context, email string) (models.User, error)
	findByIDFn        func(ctx context.Context, id int64) (models.User, error)
	findActiveByIDFn  func(ctx context.Context, id int64) (models.User, error)
	setPasswordHashFn func(ctx context.Context, id int64, hash string, clearTemporary bool) error
	touchLastLoginFn  func(ctx context.Context, id int64) error
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindActiveByID(ctx context.Context, id int64) (models.User, error) {
	if m.findActiveByIDFn != nil {
		return m.findActiveByIDFn(ctx, id)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) SetPasswordHash(ctx context.Context, id int64, hash string, clearTemporary bool) error {
	if m.setPasswordHashFn != nil {
		return m.setPasswordHashFn(ctx, id, hash, clearTemporary)
	}
	return nil
}

func (m *mockUserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	if m.touchLastLoginFn != nil {
		return m.touchLastLoginFn(ctx, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.RoleRepository
// ─────────────────────────────────────────────

type mockRoleRepository struct {
	findByIDFn func(ctx context.Context, id int64) (models.Role, error)
}

func (m *mockRoleRepository) FindByID(ctx context.Context, id int64) (models.Role, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Role{}, store.ErrRoleNotFound
}

func newTestAuthService(users *mockUserRepository, roles *mockRoleRepository) AuthService {
	return NewAuthService(users, roles, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "paroquia-on-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func bcryptHash(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRoleRepository{})

	_, err := svc.Login(context.Background(), "", "senha")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(context.Background(), "a@b.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRoleRepository{})

	_, err := svc.Login(context.Background(), "ghost@paroquia.org", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreFailure(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrStoreUnavailable
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	_, err := svc.Login(context.Background(), "a@b.com", "senha")
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveBlocksEvenWithCorrectPassword(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{
				ID:           1,
				Email:        email,
				PasswordHash: bcryptHash(t, "Correct1!"),
				Active:       false,
			}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	_, err := svc.Login(context.Background(), "a@b.com", "Correct1!")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLogin_TemporaryPasswordMatch(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{
				ID:                5,
				Email:             email,
				TemporaryPassword: strPtr("T3mp!"),
				PasswordHash:      bcryptHash(t, "Old1!pass"),
				Active:            true,
			}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	result, err := svc.Login(context.Background(), "a@b.com", "T3mp!")
	require.NoError(t, err)
	assert.True(t, result.RequiresPasswordChange)
	assert.Empty(t, result.Token.SignedString, "no token before the mandatory change")
	assert.Equal(t, int64(5), result.User.ID)
}

func TestLogin_TemporaryPasswordMismatch(t *testing.T) {
	// even the real stored password is rejected while rotation is pending
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{
				ID:                5,
				Email:             email,
				TemporaryPassword: strPtr("T3mp!"),
				PasswordHash:      bcryptHash(t, "Old1!pass"),
				Active:            true,
			}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	_, err := svc.Login(context.Background(), "a@b.com", "Old1!pass")
	assert.ErrorIs(t, err, ErrPasswordChangeRequired)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{
				ID:           1,
				Email:        email,
				PasswordHash: bcryptHash(t, "Correct1!"),
				Active:       true,
			}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	_, err := svc.Login(context.Background(), "a@b.com", "Wrong1!xx")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NoCredentialAtAll(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, Active: true}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	_, err := svc.Login(context.Background(), "a@b.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	touched := false
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{
				ID:           7,
				Email:        email,
				PasswordHash: bcryptHash(t, "Correct1!"),
				Active:       true,
				RoleID:       int64Ptr(2),
			}, nil
		},
		touchLastLoginFn: func(ctx context.Context, id int64) error {
			touched = true
			assert.Equal(t, int64(7), id)
			return nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	result, err := svc.Login(context.Background(), "maria@paroquia.org", "Correct1!")
	require.NoError(t, err)
	assert.False(t, result.RequiresPasswordChange)
	assert.NotEmpty(t, result.Token.SignedString)
	assert.Equal(t, int64(7), result.Token.UserID)
	assert.True(t, touched)
}

func TestLogin_TouchLastLoginFailureIsIgnored(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{
				ID:           7,
				Email:        email,
				PasswordHash: bcryptHash(t, "Correct1!"),
				Active:       true,
			}, nil
		},
		touchLastLoginFn: func(ctx context.Context, id int64) error {
			return store.ErrStoreUnavailable
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	result, err := svc.Login(context.Background(), "maria@paroquia.org", "Correct1!")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token.SignedString)
}

func TestFirstAccessChange_Validation(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRoleRepository{})

	err := svc.FirstAccessChange(context.Background(), "", "T3mp!", "Newpass1!")
	assert.ErrorIs(t, err, ErrMissingFields)

	err = svc.FirstAccessChange(context.Background(), "not-an-email", "T3mp!", "Newpass1!")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestFirstAccessChange_UserNotFound(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRoleRepository{})

	err := svc.FirstAccessChange(context.Background(), "ghost@paroquia.org", "T3mp!", "Newpass1!")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFirstAccessChange_InactiveTreatedAsNotFound(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, TemporaryPassword: strPtr("T3mp!"), Active: false}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	err := svc.FirstAccessChange(context.Background(), "a@b.com", "T3mp!", "Newpass1!")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFirstAccessChange_WrongTemporaryPassword(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, TemporaryPassword: strPtr("T3mp!"), Active: true}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	err := svc.FirstAccessChange(context.Background(), "a@b.com", "t3mp!", "Newpass1!")
	assert.ErrorIs(t, err, ErrInvalidTempPassword)
}

func TestFirstAccessChange_WeakPassword(t *testing.T) {
	// the end-to-end literal: "Weak1" scores exactly 3 (upper, lower, number)
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: "a@b.com", TemporaryPassword: strPtr("T3mp!"), Active: true}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	err := svc.FirstAccessChange(context.Background(), "a@b.com", "T3mp!", "Weak1")

	var weak *WeakPasswordError
	require.ErrorAs(t, err, &weak)
	assert.Equal(t, 3, weak.Check.Score)
	assert.False(t, weak.Check.Requirements.Length)
	assert.False(t, weak.Check.Requirements.Special)
}

func TestFirstAccessChange_Success(t *testing.T) {
	var gotHash string
	var gotClear bool
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 9, Email: email, TemporaryPassword: strPtr("T3mp!"), Active: true}, nil
		},
		setPasswordHashFn: func(ctx context.Context, id int64, hash string, clearTemporary bool) error {
			assert.Equal(t, int64(9), id)
			gotHash, gotClear = hash, clearTemporary
			return nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	err := svc.FirstAccessChange(context.Background(), "a@b.com", "T3mp!", "Newpass1!")
	require.NoError(t, err)
	assert.True(t, gotClear, "temporary password must be cleared in the same update")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("Newpass1!")))
}

func TestFirstAccessChange_StoreFailure(t *testing.T) {
	users := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 9, Email: email, TemporaryPassword: strPtr("T3mp!"), Active: true}, nil
		},
		setPasswordHashFn: func(ctx context.Context, id int64, hash string, clearTemporary bool) error {
			return store.ErrStoreUnavailable
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	err := svc.FirstAccessChange(context.Background(), "a@b.com", "T3mp!", "Newpass1!")
	assert.ErrorIs(t, err, ErrUpdateFailed)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	users := &mockUserRepository{
		findActiveByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "a@b.com", PasswordHash: bcryptHash(t, "Current1!"), Active: true}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	err := svc.ChangePassword(context.Background(), 3, "Wrong1!xx", "Newpass1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword_Success(t *testing.T) {
	var gotClear bool
	users := &mockUserRepository{
		findActiveByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "a@b.com", PasswordHash: bcryptHash(t, "Current1!"), Active: true}, nil
		},
		setPasswordHashFn: func(ctx context.Context, id int64, hash string, clearTemporary bool) error {
			gotClear = clearTemporary
			return nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	err := svc.ChangePassword(context.Background(), 3, "Current1!", "Newpass1!")
	require.NoError(t, err)
	assert.False(t, gotClear)
}

func TestResetPassword_WeakPassword(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "a@b.com", Active: true}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	_, err := svc.ResetPassword(context.Background(), 3, "weak")

	var weak *WeakPasswordError
	assert.ErrorAs(t, err, &weak)
}

func TestResetPassword_Success(t *testing.T) {
	users := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "reset@paroquia.org", Active: true}, nil
		},
	}
	svc := newTestAuthService(users, &mockRoleRepository{})

	user, err := svc.ResetPassword(context.Background(), 4, "Newpass1!")
	require.NoError(t, err)
	assert.Equal(t, "reset@paroquia.org", user.Email)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	stored := models.User{ID: 7, Email: "maria@paroquia.org", Active: true, RoleID: int64Ptr(2), PersonID: int64Ptr(31)}
	users := &mockUserRepository{
		findActiveByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			if id == stored.ID {
				return stored, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}
	roles := &mockRoleRepository{
		findByIDFn: func(ctx context.Context, id int64) (models.Role, error) {
			return models.Role{ID: id, Name: "secretaria", Permissions: models.Permissions{"eventos": true}}, nil
		},
	}
	svc := newTestAuthService(users, roles)

	token, err := svc.CreateToken(context.Background(), stored)
	require.NoError(t, err)

	session, err := svc.VerifyToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, session.ID)
	assert.Equal(t, stored.Email, session.Email)
	assert.Equal(t, stored.RoleID, session.RoleID)
	assert.Equal(t, stored.PersonID, session.PersonID)
	assert.Equal(t, "secretaria", session.RoleName)
	assert.True(t, session.Permissions["eventos"])
}

func TestVerifyToken_DeactivatedUser(t *testing.T) {
	// signature-valid token for a user that no longer passes the active filter
	svc := newTestAuthService(&mockUserRepository{}, &mockRoleRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{ID: 7, Email: "maria@paroquia.org"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_RoleLookupFailureDegrades(t *testing.T) {
	users := &mockUserRepository{
		findActiveByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "maria@paroquia.org", Active: true, RoleID: int64Ptr(2)}, nil
		},
	}
	roles := &mockRoleRepository{
		findByIDFn: func(ctx context.Context, id int64) (models.Role, error) {
			return models.Role{}, store.ErrStoreUnavailable
		},
	}
	svc := newTestAuthService(users, roles)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 7, Email: "maria@paroquia.org"})
	require.NoError(t, err)

	session, err := svc.VerifyToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Empty(t, session.RoleName)
	assert.NotNil(t, session.Permissions)
	assert.Empty(t, session.Permissions)
}

func TestVerifyToken_Expired(t *testing.T) {
	users := &mockUserRepository{
		findActiveByIDFn: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "maria@paroquia.org", Active: true}, nil
		},
	}
	expired := NewAuthService(users, &mockRoleRepository{}, config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "paroquia-on-test",
		TokenDuration: -time.Minute,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop())

	token, err := expired.CreateToken(context.Background(), models.User{ID: 7, Email: "maria@paroquia.org"})
	require.NoError(t, err)

	_, err = expired.VerifyToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRoleRepository{})

	_, err := svc.VerifyToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.VerifyToken(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrMissingToken)
}
