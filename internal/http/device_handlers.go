package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"waste-service/internal/http/middleware"
	"waste-service/internal/model"
	"waste-service/internal/service"
)

func (h *Handler) addDevice(c *gin.Context) {
	var req struct {
		WasteType string `json:"wasteType"`
		UserID    string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.WasteType == "" || req.UserID == "" {
		respondError(c, http.StatusBadRequest, "Waste type and User ID are required")
		return
	}

	userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid User ID")
		return
	}

	device, err := h.deviceService.Add(c.Request.Context(), service.AddDeviceInput{
		WasteType: model.WasteCategory(strings.TrimSpace(req.WasteType)),
		UserID:    userID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Device added successfully",
		"device":  device,
	})
}

// getMyDevices resolves the user id from the authenticated principal,
// not from caller input.
func (h *Handler) getMyDevices(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	devices, err := h.deviceService.ListByUser(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, devices)
}

func (h *Handler) getAllDevices(c *gin.Context) {
	devices, err := h.deviceService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (h *Handler) getDeviceByUserID(c *gin.Context) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid User ID format.")
		return
	}

	device, err := h.deviceService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, device)
}

func (h *Handler) getWasteLevelByUserID(c *gin.Context) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid User ID format.")
		return
	}

	level, err := h.deviceService.WasteLevel(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, level)
}

func (h *Handler) updateWasteLevel(c *gin.Context) {
	userID, err := uuid.Parse(strings.TrimSpace(c.Param("userId")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid User ID")
		return
	}

	var req struct {
		WasteType string `json:"wasteType"`
		Level     *int   `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Level must be a number between 0 and 100")
		return
	}
	if req.Level == nil {
		respondError(c, http.StatusBadRequest, "Level must be a number between 0 and 100")
		return
	}

	level, err := h.deviceService.UpdateLevel(
		c.Request.Context(),
		userID,
		model.WasteCategory(strings.TrimSpace(req.WasteType)),
		*req.Level,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Waste level updated successfully",
		"wasteLevel": level,
	})
}
