package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	handler "github.com/soumajit03/StackUp-PlaylistManager/internal/adapters/http"
	mongostore "github.com/soumajit03/StackUp-PlaylistManager/internal/adapters/mongo"
	"github.com/soumajit03/StackUp-PlaylistManager/internal/adapters/youtube"
	"github.com/soumajit03/StackUp-PlaylistManager/internal/app"
	"github.com/soumajit03/StackUp-PlaylistManager/internal/config"

	_ "github.com/soumajit03/StackUp-PlaylistManager/docs"
)

// @title			StackUp Playlist Manager API
// @version		1.0
// @description	API for tracking YouTube playlists per user: import playlists via the
// @description	YouTube Data API and tag each video with watched/unwatched/practice/saved labels.

// @contact.name	StackUp Playlist Manager Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()

	if cfg.YouTubeAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	store, err := mongostore.NewStore(ctx, client.Database(cfg.MongoDatabase))
	if err != nil {
		log.Fatalf("Failed to set up playlist store: %v", err)
	}

	source := youtube.NewSource(&http.Client{Timeout: 30 * time.Second}, cfg.YouTubeAPIKey, cfg.MaxImportPages)

	playlistService := app.NewService(source, store)

	r := gin.Default()
	r.Use(handler.CORS(cfg.ClientOrigin))
	h := handler.NewHandler(playlistService)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	log.Printf("Starting StackUp Playlist Manager API on %s", addr)
	log.Printf("MongoDB database: %s", cfg.MongoDatabase)
	log.Printf("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
