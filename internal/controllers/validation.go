package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errUnsupportedMediaType = errors.New("request body must be application/json")

// RegisterValidations adds the "notblank" rule, which rejects strings made
// only of whitespace, to gin's binding validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("notblank", notBlank)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// bindJSON binds and validates a JSON body, answering non-JSON bodies with errUnsupportedMediaType
func bindJSON(ctx *gin.Context, req interface{}) error {
	if ctx.ContentType() != binding.MIMEJSON {
		return errUnsupportedMediaType
	}
	return ctx.ShouldBindJSON(req)
}

// bindStrictJSON is bindJSON for bodies that must not carry fields req does not declare
func bindStrictJSON(ctx *gin.Context, req interface{}) error {
	if ctx.ContentType() != binding.MIMEJSON {
		return errUnsupportedMediaType
	}
	if ctx.Request.Body == nil {
		return fmt.Errorf("request body is empty")
	}

	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return binding.Validator.ValidateStruct(req)
}

type createDishRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

type mealRequest struct {
	Name      string `json:"name" binding:"required,notblank"`
	Appetizer *int   `json:"appetizer" binding:"required"`
	Main      *int   `json:"main" binding:"required"`
	Dessert   *int   `json:"dessert" binding:"required"`
}

type createDietRequest struct {
	Name     string   `json:"name" binding:"required,notblank,excludes=/"`
	Calories *float64 `json:"cal" binding:"required"`
	Sodium   *float64 `json:"sodium" binding:"required"`
	Sugar    *float64 `json:"sugar" binding:"required"`
}
