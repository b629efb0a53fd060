package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-meals-api/internal/config"
	"github.com/franciscosanchezn/gin-meals-api/internal/controllers"
	"github.com/franciscosanchezn/gin-meals-api/internal/middleware"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the stores the routes of a service role are served from.
// Meals, Filter and Dishes are required for the meals role, Diets for the diets role.
type Dependencies struct {
	Service     string
	Dishes      services.DishService
	Meals       services.MealService
	Filter      *services.MealFilter
	Diets       services.DietService
	AuthEnabled bool
	JWTSecret   []byte
}

// SetupRoutes registers the health check, the API docs and the resources
// served by deps.Service. Writes require an admin token when auth is enabled.
func SetupRoutes(r *gin.Engine, deps Dependencies) {
	r.GET("/health", healthCheckHandler(deps.Service))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	writes := r.Group("/")
	if deps.AuthEnabled {
		writes.Use(middleware.JWTAuth(deps.JWTSecret), middleware.RequireRole(middleware.RoleAdmin))
	}

	if err := controllers.RegisterValidations(); err != nil {
		panic(err)
	}

	if deps.Service == config.ServiceMeals || deps.Service == config.ServiceAll {
		dishController := controllers.NewDishController(deps.Dishes)
		mealController := controllers.NewMealController(deps.Meals, deps.Filter)

		// ── Dishes ─────────────────────────────────────────────────────
		r.GET("/dishes", dishController.GetAllDishes)
		r.GET("/dishes/:key", dishController.GetDish)
		r.DELETE("/dishes", controllers.MethodNotAllowed)
		writes.POST("/dishes", dishController.CreateDish)
		writes.DELETE("/dishes/:key", dishController.DeleteDish)

		// ── Meals ──────────────────────────────────────────────────────
		r.GET("/meals", mealController.GetAllMeals)
		r.GET("/meals/:key", mealController.GetMeal)
		r.DELETE("/meals", controllers.MethodNotAllowed)
		writes.POST("/meals", mealController.CreateMeal)
		writes.PUT("/meals/:key", mealController.ReplaceMeal)
		writes.DELETE("/meals/:key", mealController.DeleteMeal)
	}

	if deps.Service == config.ServiceDiets || deps.Service == config.ServiceAll {
		dietController := controllers.NewDietController(deps.Diets)

		// ── Diets ──────────────────────────────────────────────────────
		r.GET("/diets", dietController.GetAllDiets)
		r.GET("/diets/:name", dietController.GetDiet)
		writes.POST("/diets", dietController.CreateDiet)
	}
}

// healthCheckHandler godoc
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "gin-meals-api",
			"role":      service,
		})
	}
}
