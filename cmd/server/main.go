package main

import (
	"fmt"
	"log"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/config"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/database"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/handler"

	// Swagger imports
	_ "github.com/akka-elcuestas93/PRCOMPU-portal-juegos/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           Portal de Juegos API
// @version         1.0
// @description     Catalog-management API with cookie-session authentication.
// @host            localhost:8080
// @BasePath        /api
func main() {
	cfg := config.AppConfig

	// Connect to the database and create the schema
	db := database.Connect(cfg.DatabaseURL)

	// Create-or-reset the default administrator on every start
	if err := database.SeedDefaultAdmin(db); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	router := handler.NewRouter(db, cfg)

	fmt.Printf("Server is running on :%s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
