package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DishController handles HTTP requests related to dishes
type DishController interface {
	// GetAllDishes retrieves all dishes
	GetAllDishes(c *gin.Context)
	// CreateDish looks a dish up and stores it
	CreateDish(c *gin.Context)
	// GetDish retrieves a dish by id or name
	GetDish(c *gin.Context)
	// DeleteDish deletes a dish by id or name
	DeleteDish(c *gin.Context)
}

type dishController struct {
	service services.DishService
}

// NewDishController creates a new instance of DishController
func NewDishController(service services.DishService) *dishController {
	return &dishController{service: service}
}

// GetAllDishes godoc
// @Summary Get all dishes
// @Description Get every stored dish in insertion order
// @Tags dishes
// @Produce json
// @Success 200 {array} models.Dish
// @Failure 500 {object} models.APIError
// @Router /dishes [get]
func (c *dishController) GetAllDishes(ctx *gin.Context) {
	dishes, err := c.service.GetAllDishes(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dishes)
}

// CreateDish godoc
// @Summary Create a dish
// @Description Look the name up in the nutrition API and store the summed values
// @Tags dishes
// @Accept json
// @Produce json
// @Param dish body object{name=string} true "Dish name"
// @Success 201 {integer} int "Id of the new dish"
// @Failure 415 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Failure 504 {object} models.APIError
// @Security BearerAuth
// @Router /dishes [post]
func (c *dishController) CreateDish(ctx *gin.Context) {
	var req createDishRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	dish, err := c.service.CreateDish(ctx.Request.Context(), req.Name)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dish.ID)
}

// GetDish godoc
// @Summary Get dish by id or name
// @Description A key made only of digits is an id, anything else is a name
// @Tags dishes
// @Produce json
// @Param key path string true "Dish id or name"
// @Success 200 {object} models.Dish
// @Failure 404 {object} models.APIError
// @Router /dishes/{key} [get]
func (c *dishController) GetDish(ctx *gin.Context) {
	id, name, isID := parseKey(ctx.Param("key"))

	var (
		dish  models.Dish
		found bool
		err   error
	)
	if isID {
		dish, found, err = c.service.GetDishByID(ctx.Request.Context(), id)
	} else {
		dish, found, err = c.service.GetDishByName(ctx.Request.Context(), name)
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if !found {
		respondNotFound(ctx, "Dish", name)
		return
	}
	ctx.JSON(http.StatusOK, dish)
}

// DeleteDish godoc
// @Summary Delete dish by id or name
// @Description Deletes the dish and degrades every meal that referenced it
// @Tags dishes
// @Produce json
// @Param key path string true "Dish id or name"
// @Success 200 {integer} int "Id of the deleted dish"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /dishes/{key} [delete]
func (c *dishController) DeleteDish(ctx *gin.Context) {
	id, name, isID := parseKey(ctx.Param("key"))

	var (
		deletedID int
		found     bool
		err       error
	)
	if isID {
		deletedID, found, err = c.service.DeleteDishByID(ctx.Request.Context(), id)
	} else {
		deletedID, found, err = c.service.DeleteDishByName(ctx.Request.Context(), name)
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if !found {
		respondNotFound(ctx, "Dish", name)
		return
	}
	ctx.JSON(http.StatusOK, deletedID)
}
