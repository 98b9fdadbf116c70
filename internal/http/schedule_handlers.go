package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"waste-service/internal/http/middleware"
	"waste-service/internal/model"
	"waste-service/internal/service"
)

func (h *Handler) createSchedule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	var req struct {
		Time        string `json:"time"`
		Address     string `json:"address"`
		TruckNumber string `json:"truckNumber"`
		Collector   string `json:"collector"`
		Special     bool   `json:"special"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, strings.TrimSpace(req.Time))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid time format")
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), principal, service.CreateScheduleInput{
		Time:        scheduledAt,
		Address:     req.Address,
		TruckNumber: req.TruckNumber,
		Collector:   req.Collector,
		Special:     req.Special,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *Handler) getAllSchedules(c *gin.Context) {
	schedules, err := h.scheduleService.List(c.Request.Context(), c.Query("district"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *Handler) getScheduleByID(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	schedule, err := h.scheduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *Handler) updateSchedule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	var req struct {
		Time        *string  `json:"time"`
		Address     *string  `json:"address"`
		TruckNumber *string  `json:"truckNumber"`
		Collector   *string  `json:"collector"`
		Special     *bool    `json:"special"`
		Status      *string  `json:"status"`
		Weight      *float64 `json:"weight"`
		WasteType   *string  `json:"wasteType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateScheduleInput{
		Address:     req.Address,
		TruckNumber: req.TruckNumber,
		Collector:   req.Collector,
		Special:     req.Special,
		Weight:      req.Weight,
		WasteType:   req.WasteType,
	}
	if req.Time != nil {
		scheduledAt, err := time.Parse(time.RFC3339, strings.TrimSpace(*req.Time))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid time format")
			return
		}
		input.Time = &scheduledAt
	}
	if req.Status != nil {
		status := model.ScheduleStatus(strings.TrimSpace(*req.Status))
		input.Status = &status
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *Handler) deleteSchedule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
