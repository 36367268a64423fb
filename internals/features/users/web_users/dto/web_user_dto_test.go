package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam_backend/internals/constants"
	authModel "steam_backend/internals/features/users/auth/model"
	authService "steam_backend/internals/features/users/auth/service"
	helper "steam_backend/internals/helpers"
)

func TestCreateRequest_Validation(t *testing.T) {
	ok := CreateWebUserRequest{Email: "t@steam.test", Password: "longenough", FullName: "Tia", Role: constants.RoleTeacher}
	assert.NoError(t, helper.Validate.Struct(&ok))

	root := ok
	root.Role = constants.RoleRoot
	assert.Error(t, helper.Validate.Struct(&root))

	short := ok
	short.Password = "short"
	assert.Error(t, helper.Validate.Struct(&short))
}

func TestCreateRequest_ToModel(t *testing.T) {
	req := CreateWebUserRequest{Email: "  Tia@Steam.TEST ", Password: "longenough", FullName: " Tia ", Role: constants.RoleManager}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "tia@steam.test", m.WebUserEmail)
	assert.Equal(t, "Tia", m.WebUserFullName)
	assert.True(t, m.WebUserIsActive)
	assert.NotEqual(t, "longenough", m.WebUserPasswordHash)
	assert.NoError(t, authService.CheckPasswordHash(m.WebUserPasswordHash, "longenough"))
}

func TestUpdateRequest_Apply(t *testing.T) {
	m := &authModel.WebUserModel{WebUserRole: constants.RoleTeacher, WebUserIsActive: true, WebUserPasswordHash: "old"}
	pw, off, role := "newsecret1", false, constants.RoleManager

	req := UpdateWebUserRequest{Password: &pw, IsActive: &off, Role: &role}
	require.NoError(t, req.Apply(m))
	assert.Equal(t, constants.RoleManager, m.WebUserRole)
	assert.False(t, m.WebUserIsActive)
	assert.NoError(t, authService.CheckPasswordHash(m.WebUserPasswordHash, pw))
}

func TestUpdateRequest_RootIsUntouchable(t *testing.T) {
	m := &authModel.WebUserModel{WebUserRole: constants.RoleRoot, WebUserIsActive: true}
	off := false

	err := (&UpdateWebUserRequest{IsActive: &off}).Apply(m)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
	assert.True(t, m.WebUserIsActive)
}
