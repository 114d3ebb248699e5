package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"planner/cmd/fx/activityfx"
	"planner/cmd/fx/configfx"
	"planner/cmd/fx/controllersfx"
	"planner/cmd/fx/dbfx"
	"planner/cmd/fx/linkfx"
	"planner/cmd/fx/mailfx"
	"planner/cmd/fx/participantfx"
	"planner/cmd/fx/tripfx"
	"planner/internal/api/controllers"
	"planner/internal/config"
	"planner/internal/infra"
	"planner/pkg/middleware"
)

func main() {
	app := fx.New(
		configfx.Module,
		dbfx.Module,
		mailfx.Module,
		tripfx.Module,
		participantfx.Module,
		activityfx.Module,
		linkfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.AppConfig, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.AppConfig,
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController,
	linkController *controllers.LinkController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	corsCfg := cors.DefaultConfig()
	if cfg.CORSAllowOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowOrigin}
	}
	r.Use(cors.New(corsCfg))

	RegisterRoutes(r, tripController, participantController, activityController, linkController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	participantController *controllers.ParticipantController,
	activityController *controllers.ActivityController,
	linkController *controllers.LinkController) {

	trips := r.Group("/trips")
	trips.POST("", tripController.CreateTrip)
	trips.GET("/:tripId", tripController.GetTripDetails)
	trips.GET("/:tripId/confirm", tripController.ConfirmTrip)
	trips.GET("/:tripId/participants", participantController.ListParticipants)
	trips.POST("/:tripId/activities", activityController.CreateActivity)
	trips.GET("/:tripId/activities", activityController.ListActivities)
	trips.POST("/:tripId/links", linkController.CreateLink)
	trips.GET("/:tripId/links", linkController.ListLinks)

	participants := r.Group("/participants")
	participants.GET("/:participantId/confirm", participantController.ConfirmParticipant)
}
