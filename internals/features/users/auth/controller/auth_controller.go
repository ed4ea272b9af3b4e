// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/users/users/dto"
	"schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

const accessTokenTTL = 15 * time.Minute

type AuthController struct {
	DB *gorm.DB
}

func validRole(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleStaff, constants.RoleParent, constants.RoleStudent:
		return true
	}
	return false
}

// POST /auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))
	req.UserFullName = strings.TrimSpace(req.UserFullName)
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !validRole(req.UserRole) {
		return helper.JsonValidationError(c, map[string][]string{
			"user_role": {"must be one of admin, staff, parent, student"},
		})
	}

	u := model.User{
		UserFullName: req.UserFullName,
		UserEmail:    req.UserEmail,
		UserRole:     req.UserRole,
		UserIsActive: true,
	}
	if err := u.SetPassword(req.UserPassword); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, http.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "user registered", dto.ToUserResponse(u))
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var u model.User
	if err := h.DB.First(&u, "user_email = ?", req.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !u.UserIsActive || !u.CheckPassword(req.UserPassword) {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := helperAuth.MakeAccessToken(u.UserID, u.UserRole, accessTokenTTL)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// cookie fallback untuk klien web internal
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(u),
	})
}

// GET /auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u model.User
	if err := h.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(u))
}

// POST /auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:    "access_token",
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "logged out", nil)
}
