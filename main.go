package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/yantrika/yantrika-backend-go/config"
	routes "github.com/yantrika/yantrika-backend-go/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	routes.SetupRoutes(r, cfg)

	// static front-end
	r.Static("/site", "./public")

	log.Printf("server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
