package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MealController handles HTTP requests related to meals
type MealController interface {
	// GetAllMeals retrieves all meals, or those fitting a diet when ?diet= is given
	GetAllMeals(c *gin.Context)
	// CreateMeal composes a meal from three dishes
	CreateMeal(c *gin.Context)
	// GetMeal retrieves a meal by id or name
	GetMeal(c *gin.Context)
	// ReplaceMeal overwrites a meal by id
	ReplaceMeal(c *gin.Context)
	// DeleteMeal deletes a meal by id or name
	DeleteMeal(c *gin.Context)
}

type mealController struct {
	service services.MealService
	filter  *services.MealFilter
}

// NewMealController creates a new instance of MealController
func NewMealController(service services.MealService, filter *services.MealFilter) *mealController {
	return &mealController{service: service, filter: filter}
}

// GetAllMeals godoc
// @Summary Get all meals
// @Description Get every meal. With a non-empty diet, only active meals within all of the diet's ceilings
// @Tags meals
// @Produce json
// @Param diet query string false "Diet name to filter by"
// @Success 200 {array} models.Meal
// @Failure 404 {object} models.APIError
// @Failure 503 {object} models.APIError
// @Router /meals [get]
func (c *mealController) GetAllMeals(ctx *gin.Context) {
	var (
		meals []models.Meal
		err   error
	)
	// An empty diet means no filter
	if diet := ctx.Query("diet"); diet != "" {
		meals, err = c.filter.MealsForDiet(ctx.Request.Context(), diet)
	} else {
		meals, err = c.service.GetAllMeals(ctx.Request.Context())
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meals)
}

// CreateMeal godoc
// @Summary Create a meal
// @Description Compose a meal from an appetizer, a main and a dessert dish
// @Tags meals
// @Accept json
// @Produce json
// @Param meal body object{name=string,appetizer=int,main=int,dessert=int} true "Meal"
// @Success 201 {integer} int "Id of the new meal"
// @Failure 415 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /meals [post]
func (c *mealController) CreateMeal(ctx *gin.Context) {
	var req mealRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	meal, err := c.service.CreateMeal(ctx.Request.Context(), req.Name, *req.Appetizer, *req.Main, *req.Dessert)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, meal.ID)
}

// GetMeal godoc
// @Summary Get meal by id or name
// @Description A key made only of digits is an id, anything else is a name
// @Tags meals
// @Produce json
// @Param key path string true "Meal id or name"
// @Success 200 {object} models.Meal
// @Failure 404 {object} models.APIError
// @Router /meals/{key} [get]
func (c *mealController) GetMeal(ctx *gin.Context) {
	id, name, isID := parseKey(ctx.Param("key"))

	var (
		meal  models.Meal
		found bool
		err   error
	)
	if isID {
		meal, found, err = c.service.GetMealByID(ctx.Request.Context(), id)
	} else {
		meal, found, err = c.service.GetMealByName(ctx.Request.Context(), name)
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if !found {
		respondNotFound(ctx, "Meal", name)
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// ReplaceMeal godoc
// @Summary Replace a meal
// @Description Overwrite name, dishes and totals of an existing meal. A degraded meal becomes active again
// @Tags meals
// @Accept json
// @Produce json
// @Param key path int true "Meal id"
// @Param meal body object{name=string,appetizer=int,main=int,dessert=int} true "Meal"
// @Success 200 {integer} int "Id of the replaced meal"
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 415 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /meals/{key} [put]
func (c *mealController) ReplaceMeal(ctx *gin.Context) {
	id, _, isID := parseKey(ctx.Param("key"))
	if !isID {
		ctx.AbortWithStatusJSON(http.StatusBadRequest,
			models.NewAPIError(models.ErrInvalidRequest, "Meals can only be replaced by numeric id"))
		return
	}

	var req mealRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	meal, err := c.service.ReplaceMeal(ctx.Request.Context(), id, req.Name, *req.Appetizer, *req.Main, *req.Dessert)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meal.ID)
}

// DeleteMeal godoc
// @Summary Delete meal by id or name
// @Tags meals
// @Produce json
// @Param key path string true "Meal id or name"
// @Success 200 {integer} int "Id of the deleted meal"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /meals/{key} [delete]
func (c *mealController) DeleteMeal(ctx *gin.Context) {
	id, name, isID := parseKey(ctx.Param("key"))

	var (
		deletedID int
		found     bool
		err       error
	)
	if isID {
		deletedID, found, err = c.service.DeleteMealByID(ctx.Request.Context(), id)
	} else {
		deletedID, found, err = c.service.DeleteMealByName(ctx.Request.Context(), name)
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if !found {
		respondNotFound(ctx, "Meal", name)
		return
	}
	ctx.JSON(http.StatusOK, deletedID)
}
