package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"waste-service/internal/http/middleware"
	"waste-service/internal/service"
)

func (h *Handler) addSpecialCollection(c *gin.Context) {
	var req struct {
		WasteType           string    `json:"wasteType"`
		ChooseDate          string    `json:"chooseDate"`
		WasteDescription    string    `json:"wasteDescription"`
		EmergencyCollection looseBool `json:"emergencyCollection"`
		User                string    `json:"user"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.WasteType == "" || req.ChooseDate == "" || req.WasteDescription == "" || req.User == "" {
		respondError(c, http.StatusBadRequest, "All required fields must be filled.")
		return
	}

	userID, err := uuid.Parse(strings.TrimSpace(req.User))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	record, err := h.collectionService.Create(c.Request.Context(), service.CreateCollectionInput{
		WasteType:           req.WasteType,
		ChooseDate:          req.ChooseDate,
		WasteDescription:    req.WasteDescription,
		EmergencyCollection: bool(req.EmergencyCollection),
		UserID:              userID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *Handler) getSpecialCollections(c *gin.Context) {
	records, err := h.collectionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) getSpecialCollectionByID(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid collection ID.")
		return
	}

	record, err := h.collectionService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) updateSpecialCollection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid collection ID.")
		return
	}

	var req struct {
		WasteType           *string    `json:"wasteType"`
		ChooseDate          *string    `json:"chooseDate"`
		WasteDescription    *string    `json:"wasteDescription"`
		EmergencyCollection *looseBool `json:"emergencyCollection"`
		Status              *string    `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateCollectionInput{
		WasteType:        req.WasteType,
		ChooseDate:       req.ChooseDate,
		WasteDescription: req.WasteDescription,
		Status:           req.Status,
	}
	if req.EmergencyCollection != nil {
		emergency := bool(*req.EmergencyCollection)
		input.EmergencyCollection = &emergency
	}

	record, err := h.collectionService.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) updateSpecialCollectionStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid collection ID.")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.collectionService.UpdateStatus(c.Request.Context(), principal, id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) deleteSpecialCollection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid collection ID.")
		return
	}

	if err := h.collectionService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted successfully."})
}
