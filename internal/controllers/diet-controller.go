package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DietController handles HTTP requests related to diets
type DietController interface {
	// GetAllDiets retrieves all diets
	GetAllDiets(c *gin.Context)
	// CreateDiet stores a new diet
	CreateDiet(c *gin.Context)
	// GetDiet retrieves a diet by name
	GetDiet(c *gin.Context)
}

type dietController struct {
	service services.DietService
}

// NewDietController creates a new instance of DietController
func NewDietController(service services.DietService) *dietController {
	return &dietController{service: service}
}

// GetAllDiets godoc
// @Summary Get all diets
// @Tags diets
// @Produce json
// @Success 200 {array} models.Diet
// @Router /diets [get]
func (c *dietController) GetAllDiets(ctx *gin.Context) {
	diets, err := c.service.GetAllDiets(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, diets)
}

// CreateDiet godoc
// @Summary Create a diet
// @Description Requires exactly the fields name, cal, sodium and sugar
// @Tags diets
// @Accept json
// @Produce json
// @Param diet body models.Diet true "Diet"
// @Success 201 {string} string "Confirmation message"
// @Failure 415 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Security BearerAuth
// @Router /diets [post]
func (c *dietController) CreateDiet(ctx *gin.Context) {
	var req createDietRequest
	if err := bindStrictJSON(ctx, &req); err != nil {
		respondInvalidRequest(ctx, err)
		return
	}

	diet, err := c.service.CreateDiet(ctx.Request.Context(), req.Name, *req.Calories, *req.Sodium, *req.Sugar)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, fmt.Sprintf("Diet %s was created successfully", diet.Name))
}

// GetDiet godoc
// @Summary Get diet by name
// @Tags diets
// @Produce json
// @Param name path string true "Diet name"
// @Success 200 {object} models.Diet
// @Failure 404 {object} models.APIError
// @Router /diets/{name} [get]
func (c *dietController) GetDiet(ctx *gin.Context) {
	name := ctx.Param("name")
	diet, found, err := c.service.GetDietByName(ctx.Request.Context(), name)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if !found {
		respondNotFound(ctx, "Diet", name)
		return
	}
	ctx.JSON(http.StatusOK, diet)
}
