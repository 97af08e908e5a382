package handler

import (
	"pudu-fleet-gateway/internal/adapter/http/middleware"
	"pudu-fleet-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Cloud          ports.CloudService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Liveness (local) and deep health (signed cloud round trip)
	r.GET("/healthz", Healthz)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	robotHandler := NewRobotHandler(deps.Cloud)
	mapHandler := NewMapHandler(deps.Cloud)
	missionHandler := NewMissionHandler(deps.Cloud)
	deliveryHandler := NewDeliveryHandler(deps.Cloud)
	statusHandler := NewStatusHandler(deps.Cloud)
	callbackHandler := NewCallbackHandler(deps.Logger)

	// API v1 routes
	fleet := r.Group("/api/v1/fleet")

	robots := fleet.Group("/robots")
	{
		robots.GET("", robotHandler.List)
		robots.GET("/groups", robotHandler.ListGroups)
		robots.GET("/position", robotHandler.Position)
		robots.POST("/position/command", robotHandler.PositionCommand)
	}

	maps := fleet.Group("/maps")
	{
		maps.GET("", mapHandler.List)
		maps.GET("/store", mapHandler.StoreList)
		maps.GET("/current", mapHandler.Current)
		maps.GET("/detail", mapHandler.Detail)
		maps.GET("/points", mapHandler.Points)
	}

	missions := fleet.Group("/missions")
	{
		missions.POST("/errand", missionHandler.CreateErrand)
		missions.POST("/transport", missionHandler.CreateTransport)
	}

	calls := fleet.Group("/calls")
	{
		calls.GET("", missionHandler.ListCalls)
		calls.POST("", missionHandler.Call)
		calls.POST("/cancel", missionHandler.CancelCall)
		calls.POST("/complete", missionHandler.CompleteCall)
	}

	deliveries := fleet.Group("/deliveries")
	{
		deliveries.POST("", deliveryHandler.CreateTask)
		deliveries.POST("/action", deliveryHandler.Action)
	}

	status := fleet.Group("/status")
	{
		status.GET("/by-sn", statusHandler.BySN)
		status.GET("/by-group", statusHandler.ByGroup)
	}

	fleet.GET("/tasks/state", statusHandler.TaskState)
	fleet.GET("/recharge", statusHandler.RechargeV1)
	fleet.GET("/recharge/v2", statusHandler.RechargeV2)
	fleet.GET("/cloud/health", statusHandler.CloudHealth)

	// Cloud push notifications
	fleet.POST("/callback/robot-pose", callbackHandler.RobotPose)

	return r
}
