package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	authModel "steam_backend/internals/features/users/auth/model"
	authService "steam_backend/internals/features/users/auth/service"
)

const testSecret = "test-secret"

type fakeUsers map[uuid.UUID]*authModel.WebUserModel

func (f fakeUsers) FindUserByEmail(context.Context, string) (*authModel.WebUserModel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUsers) FindUserByID(_ context.Context, id uuid.UUID) (*authModel.WebUserModel, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUsers) TouchLastLogin(context.Context, uuid.UUID, time.Time) error { return nil }

type harness struct {
	app   *fiber.App
	users fakeUsers
	bl    *authService.MemoryBlacklist
}

func newHarness() *harness {
	h := &harness{users: fakeUsers{}, bl: authService.NewMemoryBlacklist(nil)}
	h.app = fiber.New()
	web := h.app.Group("/api/web", AuthMiddleware(Config{Secret: testSecret, Blacklist: h.bl, Users: h.users}))
	web.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocUserID).(string) + "|" + c.Locals(LocUserRole).(string))
	})
	web.Post("/courses", OnlyRoles("managers only", constants.ManagerAndAbove...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return h
}

func (h *harness) user(role string, active bool) (uuid.UUID, string, *authService.Claims) {
	id := uuid.New()
	h.users[id] = &authModel.WebUserModel{WebUserID: id, WebUserRole: role, WebUserIsActive: active}
	tok, claims, err := authService.IssueToken(testSecret, id, role, time.Hour, time.Now())
	if err != nil {
		panic(err)
	}
	return id, tok, claims
}

func (h *harness) do(t *testing.T, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ValidTokenSetsLocals(t *testing.T) {
	h := newHarness()
	id, tok, _ := h.user(constants.RoleTeacher, true)

	resp := h.do(t, http.MethodGet, "/api/web/whoami", tok)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, id.String()+"|teacher", string(body))
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	h := newHarness()
	_, disabledTok, _ := h.user(constants.RoleManager, false)
	_, revokedTok, revokedClaims := h.user(constants.RoleManager, true)
	require.NoError(t, h.bl.Revoke(context.Background(), revokedClaims.ID, time.Hour))

	foreign, _, err := authService.IssueToken("other-secret", uuid.New(), constants.RoleRoot, time.Hour, time.Now())
	require.NoError(t, err)
	expired, _, err := authService.IssueToken(testSecret, uuid.New(), constants.RoleRoot, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	ghost, _, err := authService.IssueToken(testSecret, uuid.New(), constants.RoleRoot, time.Hour, time.Now())
	require.NoError(t, err)

	cases := map[string]struct {
		token string
		code  int
	}{
		"missing":  {"", fiber.StatusUnauthorized},
		"garbage":  {"abc.def.ghi", fiber.StatusUnauthorized},
		"foreign":  {foreign, fiber.StatusUnauthorized},
		"expired":  {expired, fiber.StatusUnauthorized},
		"revoked":  {revokedTok, fiber.StatusUnauthorized},
		"no user":  {ghost, fiber.StatusUnauthorized},
		"disabled": {disabledTok, fiber.StatusForbidden},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp := h.do(t, http.MethodGet, "/api/web/whoami", tc.token)
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}

func TestOnlyRoles(t *testing.T) {
	h := newHarness()
	_, teacher, _ := h.user(constants.RoleTeacher, true)
	_, manager, _ := h.user(constants.RoleManager, true)

	assert.Equal(t, fiber.StatusForbidden, h.do(t, http.MethodPost, "/api/web/courses", teacher).StatusCode)
	assert.Equal(t, fiber.StatusCreated, h.do(t, http.MethodPost, "/api/web/courses", manager).StatusCode)
}

func TestOnlyRoles_DatabaseRoleWins(t *testing.T) {
	h := newHarness()
	id, tok, _ := h.user(constants.RoleManager, true)
	h.users[id].WebUserRole = constants.RoleTeacher

	assert.Equal(t, fiber.StatusForbidden, h.do(t, http.MethodPost, "/api/web/courses", tok).StatusCode)
}
