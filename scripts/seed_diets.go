package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-meals-api/internal/config"
	"github.com/franciscosanchezn/gin-meals-api/internal/database"
	"github.com/franciscosanchezn/gin-meals-api/internal/middleware"
	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// defaultDiets are seeded when the database has none of them yet
var defaultDiets = []models.Diet{
	{Name: "low sodium", Calories: 2000, Sodium: 1500, Sugar: 50},
	{Name: "low sugar", Calories: 2000, Sodium: 2300, Sugar: 25},
	{Name: "light", Calories: 1500, Sodium: 2000, Sugar: 40},
	{Name: "balanced", Calories: 2200, Sodium: 2300, Sugar: 50},
}

func main() {
	// Parse command line flags
	token := flag.Bool("token", false, "Also print an admin bearer token signed with JWT_SECRET")
	ttl := flag.Duration("ttl", 24*time.Hour, "Validity of the printed token")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.InitDatabase(database.NewDatabaseConfig(conf))
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db, &models.Diet{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	diets, err := services.NewDietService(db)
	if err != nil {
		log.Fatal("Failed to load diets: ", err)
	}

	ctx := context.Background()
	created := 0
	for _, d := range defaultDiets {
		_, err := diets.CreateDiet(ctx, d.Name, d.Calories, d.Sodium, d.Sugar)
		switch {
		case errors.Is(err, services.ErrDuplicateName):
			fmt.Printf("Diet %q already exists, skipping\n", d.Name)
		case err != nil:
			log.Fatalf("Failed to create diet %q: %v", d.Name, err)
		default:
			created++
			fmt.Printf("Diet %q created\n", d.Name)
		}
	}
	fmt.Printf("Seeded %d of %d diets\n", created, len(defaultDiets))

	if *token {
		signed, err := middleware.GenerateToken([]byte(conf.JWTSecret), "seed-tool", middleware.RoleAdmin, *ttl)
		if err != nil {
			log.Fatal("Failed to sign token: ", err)
		}
		fmt.Println("\nAdmin token (send as 'Authorization: Bearer <token>'):")
		fmt.Println(signed)
	}
}
