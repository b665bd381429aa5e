package main

import (
	"os"

	"github.com/irsyadst/nutri-balance-backend/config"
	"github.com/irsyadst/nutri-balance-backend/routes"
	"github.com/irsyadst/nutri-balance-backend/services"
	"github.com/irsyadst/nutri-balance-backend/utils"
)

func main() {
	utils.InitLogger()
	config.InitDB()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.Logger.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		utils.Logger.WithError(err).Fatal("server stopped")
	}
}
