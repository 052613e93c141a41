package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hwlab/portal-go/config"
	"github.com/hwlab/portal-go/db"
	"github.com/hwlab/portal-go/middleware"
	"github.com/hwlab/portal-go/minio"
	"github.com/hwlab/portal-go/routes"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	minio.InitMinio()

	if err := db.Seed(config.SeedFile); err != nil {
		log.Printf("Seed failed: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal(err)
	}
}
