package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	authModel "steam_backend/internals/features/users/auth/model"
	"steam_backend/internals/helpers/dbtime"
)

type memUsers struct {
	byID    map[uuid.UUID]*authModel.WebUserModel
	touched []uuid.UUID
}

func (m *memUsers) FindUserByEmail(_ context.Context, email string) (*authModel.WebUserModel, error) {
	for _, u := range m.byID {
		if u.WebUserEmail == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUsers) FindUserByID(_ context.Context, id uuid.UUID) (*authModel.WebUserModel, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUsers) TouchLastLogin(_ context.Context, id uuid.UUID, _ time.Time) error {
	m.touched = append(m.touched, id)
	return nil
}

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newAuth(t *testing.T, users ...*authModel.WebUserModel) (*AuthService, *memUsers, *MemoryBlacklist) {
	t.Helper()
	store := &memUsers{byID: map[uuid.UUID]*authModel.WebUserModel{}}
	for _, u := range users {
		store.byID[u.WebUserID] = u
	}
	bl := NewMemoryBlacklist(func() time.Time { return now })
	return &AuthService{
		Users:     store,
		Blacklist: bl,
		Secret:    "s3cret",
		TTL:       time.Hour,
		Clock:     dbtime.FixedClock{T: now},
	}, store, bl
}

func account(t *testing.T, email, password, role string, active bool) *authModel.WebUserModel {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &authModel.WebUserModel{
		WebUserID:           uuid.New(),
		WebUserEmail:        email,
		WebUserPasswordHash: hash,
		WebUserRole:         role,
		WebUserIsActive:     active,
	}
}

func code(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	u := account(t, "manager@steam.test", "secret-pass", constants.RoleManager, true)
	svc, store, _ := newAuth(t, u)

	res, err := svc.Login(context.Background(), "manager@steam.test", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.True(t, res.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.Equal(t, []uuid.UUID{u.WebUserID}, store.touched)

	// fixed clock is in the past, so only the signature is checked here
	claims := &Claims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err = parser.ParseWithClaims(res.AccessToken, claims, func(*jwt.Token) (any, error) {
		return []byte("s3cret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, u.WebUserID.String(), claims.Subject)
	assert.Equal(t, constants.RoleManager, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_Failures(t *testing.T) {
	ok := account(t, "a@steam.test", "right-pass", constants.RoleTeacher, true)
	off := account(t, "b@steam.test", "right-pass", constants.RoleTeacher, false)
	svc, _, _ := newAuth(t, ok, off)
	ctx := context.Background()

	_, err := svc.Login(ctx, "a@steam.test", "wrong-pass")
	assert.Equal(t, fiber.StatusUnauthorized, code(t, err))

	_, err = svc.Login(ctx, "nobody@steam.test", "right-pass")
	assert.Equal(t, fiber.StatusUnauthorized, code(t, err))

	_, err = svc.Login(ctx, "b@steam.test", "right-pass")
	assert.Equal(t, fiber.StatusForbidden, code(t, err))
}

func TestLogout_RevokesUntilExpiry(t *testing.T) {
	u := account(t, "t@steam.test", "right-pass", constants.RoleTeacher, true)
	svc, _, bl := newAuth(t, u)
	ctx := context.Background()

	_, claims, err := IssueToken("s3cret", u.WebUserID, u.WebUserRole, time.Hour, now)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, claims))

	revoked, err := bl.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	bl.now = func() time.Time { return now.Add(time.Hour + time.Second) }
	revoked, err = bl.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.Equal(t, fiber.StatusUnauthorized, code(t, svc.Logout(ctx, nil)))
}

func TestMe(t *testing.T) {
	u := account(t, "r@steam.test", "right-pass", constants.RoleRoot, true)
	svc, _, _ := newAuth(t, u)

	got, err := svc.Me(context.Background(), u.WebUserID)
	require.NoError(t, err)
	assert.Equal(t, u.WebUserEmail, got.WebUserEmail)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.Equal(t, fiber.StatusNotFound, code(t, err))
}
