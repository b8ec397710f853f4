package main

import (
	"context"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/regiondist/catalog-backend/internal/database"
	"github.com/regiondist/catalog-backend/internal/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	ctx := context.Background()
	client, db, err := database.Connect(ctx)
	if err != nil {
		logrus.Errorf("Failed to connect to MongoDB: %v", err)
		db = nil
	} else {
		defer client.Disconnect(ctx)
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	handlers.SetupRoutes(router, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Starting server on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}
}
