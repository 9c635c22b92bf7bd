package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"miam/auth"
	"miam/db"
	"miam/middleware"
	"miam/rdx"
	"miam/routes"
	"miam/seed"
	"miam/sessions"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// Set up all routes and middleware layers
func setupRouter() http.Handler {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddAuthRoutes(router)
	routes.AddRecipeRoutes(router)
	routes.AddFavoritesRoutes(router)
	routes.AddStaticRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return middleware.RecoverMiddleware(middleware.Logging(middleware.SecurityHeaders(c.Handler(router))))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatalf("MONGODB_URI environment variable is not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := db.Connect(ctx, mongoURI)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Mongo disconnect: %v", err)
		}
	}()
	log.Println("Connected to MongoDB")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// Session state: Redis when configured, in-process otherwise.
	var store sessions.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		err := rdx.Init(ctx, addr, os.Getenv("REDIS_PASSWORD"))
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store = sessions.NewRedisStore(rdx.Conn)
	} else {
		log.Println("REDIS_ADDR not set, using in-memory session store")
		store = sessions.NewMemoryStore()
	}

	sm := sessions.NewManager(store, []byte(jwtSecret))
	middleware.Setup(sm)
	auth.Sessions = sm

	seedFile := envOr("SEED_FILE", "data/recipes.json")
	imageDir := envOr("IMAGE_DIR", "static/recipepic")
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed.Run(ctx, seedFile, imageDir); err != nil {
		log.Printf("Seed skipped: %v", err)
	}
	cancel()

	addr := envOr("ADDR", ":10000")
	server := &http.Server{
		Addr:              addr,
		Handler:           setupRouter(),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server started on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", addr, err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	<-shutdownChan

	log.Println("🛑 Shutdown signal received. Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server shutdown failed: %v", err)
	}

	log.Println("✅ Server stopped cleanly")
}
