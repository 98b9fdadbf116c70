package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"waste-service/internal/http/middleware"
	"waste-service/internal/service"
)

func (h *Handler) addTruck(c *gin.Context) {
	var req struct {
		Brand       string `json:"brand"`
		NumberPlate string `json:"numberPlate"`
		Capacity    int    `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	truck, err := h.truckService.Add(c.Request.Context(), service.AddTruckInput{
		Brand:       req.Brand,
		NumberPlate: req.NumberPlate,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, truck)
}

func (h *Handler) getAllTrucks(c *gin.Context) {
	trucks, err := h.truckService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trucks)
}

func (h *Handler) getTruckNumbers(c *gin.Context) {
	numbers, err := h.truckService.ListNumbers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, numbers)
}

func (h *Handler) getTruckByID(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	truck, err := h.truckService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *Handler) updateTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	var req struct {
		Brand       *string `json:"brand"`
		NumberPlate *string `json:"numberPlate"`
		Capacity    *int    `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	truck, err := h.truckService.Update(c.Request.Context(), principal, id, service.UpdateTruckInput{
		Brand:       req.Brand,
		NumberPlate: req.NumberPlate,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, truck)
}

func (h *Handler) deleteTruck(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Principal missing")
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	if err := h.truckService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
