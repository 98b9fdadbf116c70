package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"waste-service/internal/service"
)

type Handler struct {
	authService       *service.AuthService
	userService       *service.UserService
	deviceService     *service.DeviceService
	truckService      *service.TruckService
	scheduleService   *service.ScheduleService
	collectionService *service.SpecialCollectionService
	secureCookies     bool
	log               zerolog.Logger
}

func NewHandler(
	authService *service.AuthService,
	userService *service.UserService,
	deviceService *service.DeviceService,
	truckService *service.TruckService,
	scheduleService *service.ScheduleService,
	collectionService *service.SpecialCollectionService,
	secureCookies bool,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		userService:       userService,
		deviceService:     deviceService,
		truckService:      truckService,
		scheduleService:   scheduleService,
		collectionService: collectionService,
		secureCookies:     secureCookies,
		log:               log,
	}
}

// errorBody is the uniform failure envelope; stack traces never leave
// the process.
type errorBody struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func respondError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, errorBody{Success: false, StatusCode: statusCode, Message: msg})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrConflict):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

// looseBool accepts a JSON bool or the literal strings "true"/"false",
// matching what the dashboard forms submit.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	value := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if value == "null" || value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean value %q", value)
	}
	*b = looseBool(parsed)
	return nil
}
