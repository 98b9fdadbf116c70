package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, env, frontendOrigin string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", handler.signup)
		authRoutes.POST("/signin", handler.signin)
		authRoutes.POST("/signout", handler.signout)
	}

	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/devices", handler.addDevice)
		protected.GET("/devices", handler.getMyDevices)
		protected.GET("/devices/all", handler.getAllDevices)
		protected.GET("/devices/user/:userId", handler.getDeviceByUserID)
		protected.GET("/devices/wasteLevel/:userId", handler.getWasteLevelByUserID)
		protected.PUT("/devices/update/:userId", handler.updateWasteLevel)

		protected.POST("/trucks", handler.addTruck)
		protected.GET("/trucks", handler.getAllTrucks)
		protected.GET("/trucks/numbers", handler.getTruckNumbers)
		protected.GET("/trucks/:id", handler.getTruckByID)
		protected.PUT("/trucks/:id", handler.updateTruck)
		protected.DELETE("/trucks/:id", handler.deleteTruck)

		protected.POST("/users", handler.addUser)
		protected.GET("/users", handler.getUsersByRole)
		protected.PUT("/users/:userId/complete-profile", handler.completeProfile)
		protected.DELETE("/users/:userId", handler.deleteUser)

		protected.POST("/schedules", handler.createSchedule)
		protected.GET("/schedules", handler.getAllSchedules)
		protected.GET("/schedules/:id", handler.getScheduleByID)
		protected.PUT("/schedules/:id", handler.updateSchedule)
		protected.DELETE("/schedules/:id", handler.deleteSchedule)

		protected.POST("/special-collections", handler.addSpecialCollection)
		protected.GET("/special-collections", handler.getSpecialCollections)
		protected.GET("/special-collections/:id", handler.getSpecialCollectionByID)
		protected.PUT("/special-collections/:id", handler.updateSpecialCollection)
		protected.PUT("/special-collections/:id/status", handler.updateSpecialCollectionStatus)
		protected.DELETE("/special-collections/:id", handler.deleteSpecialCollection)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})

	return router
}
