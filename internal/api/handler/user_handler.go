package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/martijn/birthdays/internal/api/dto"
	"github.com/martijn/birthdays/internal/core/service"
	"github.com/martijn/birthdays/internal/core/validation"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// PutUser handles PUT /hello/:username
func (h *UserHandler) PutUser(c *gin.Context) {
	username := c.Param("username")
	if !validation.ValidUsername(username) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: service.ErrInvalidUsername.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req dto.PutUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: "dateOfBirth is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	err := h.userService.SaveUser(c.Request.Context(), username, req.DateOfBirth)
	switch {
	case errors.Is(err, service.ErrInvalidUsername), errors.Is(err, service.ErrInvalidDateOfBirth):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case err != nil:
		log.Error().Err(err).Str("username", username).Msg("failed to save user")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Database operation failed",
			Code:    http.StatusInternalServerError,
		})
	default:
		c.Status(http.StatusNoContent)
	}
}

// GetBirthday handles GET /hello/:username
func (h *UserHandler) GetBirthday(c *gin.Context) {
	username := c.Param("username")

	message, err := h.userService.BirthdayMessage(c.Request.Context(), username)
	switch {
	case errors.Is(err, service.ErrInvalidUsername):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: "User not found",
			Code:    http.StatusNotFound,
		})
	case err != nil:
		log.Error().Err(err).Str("username", username).Msg("failed to compute birthday message")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Database operation failed",
			Code:    http.StatusInternalServerError,
		})
	default:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Database operation failed",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i, user := range users {
		response[i] = dto.UserResponse{
			Username:    user.Username,
			DateOfBirth: user.DateOfBirth,
		}
	}

	c.JSON(http.StatusOK, response)
}
