package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"waste-service/internal/http/middleware"
	"waste-service/internal/model"
	"waste-service/internal/service"
)

func (h *Handler) addUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	role := model.UserRole(strings.TrimSpace(c.Query("role")))

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		NIC      string `json:"nic"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Add(c.Request.Context(), principal, role, service.AddUserInput{
		Username: req.Username,
		Email:    req.Email,
		NIC:      req.NIC,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s added successfully", titleCase(string(role))),
		"user":    user,
	})
}

func (h *Handler) getUsersByRole(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	role := model.UserRole(strings.TrimSpace(c.Query("role")))
	users, err := h.userService.ListByRole(c.Request.Context(), principal, role)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) completeProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid User ID")
		return
	}

	var req struct {
		Phone   string `json:"phone"`
		Address string `json:"address"`
		NIC     string `json:"nic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.CompleteProfile(c.Request.Context(), principal, userID, req.Phone, req.Address, req.NIC)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *Handler) deleteUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid User ID")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), principal, userID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
