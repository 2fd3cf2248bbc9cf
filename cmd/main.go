package main

import (
	"log"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/routes"
	"github.com/LielBuchnik/EmmaTrackerAPI/services"
	"github.com/LielBuchnik/EmmaTrackerAPI/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rt := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	}
	services.InitAlertDeps(config.DB, rt, push)

	r := routes.SetupRouter(rt, push)
	r.Run(":8080")
}
