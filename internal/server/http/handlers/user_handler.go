package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetcrumb/bakeshop/internal/domain/errors"
	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	"github.com/sweetcrumb/bakeshop/internal/server/http/dto"
)

// UserHandler manages account administration.
type UserHandler struct {
	facade AuthFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(facade AuthFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// UpdateRole handles PATCH /api/users/:id/role.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	role, ok := model.ParseRole(req.Role)
	if !ok {
		writeError(c, domainErrors.ErrUnknownRole, "")
		return
	}

	if err := h.facade.UpdateUserRole(c.Request.Context(), id, role); err != nil {
		writeError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Role updated",
	})
}
