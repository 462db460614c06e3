package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakeshop/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	id, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		writeError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		UserID:  id,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User: dto.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}
