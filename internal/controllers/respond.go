package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// statusFor maps a store error onto the HTTP status and API error code it is reported with
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, models.ErrUnsupportedMediaType
	case errors.Is(err, services.ErrDuplicateName):
		return http.StatusUnprocessableEntity, models.ErrDuplicateName
	case errors.Is(err, services.ErrNotRecognized):
		return http.StatusUnprocessableEntity, models.ErrNotRecognized
	case errors.Is(err, services.ErrDishReferenceInvalid):
		return http.StatusUnprocessableEntity, models.ErrDishReferenceInvalid
	case errors.Is(err, services.ErrInvalidRequest):
		return http.StatusUnprocessableEntity, models.ErrInvalidRequest
	case errors.Is(err, services.ErrUpstreamUnavailable):
		return http.StatusGatewayTimeout, models.ErrUpstreamUnavailable
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, models.ErrNotFound
	case errors.Is(err, services.ErrDietNotFound):
		return http.StatusNotFound, models.ErrDietNotFound
	case errors.Is(err, services.ErrDietServiceUnavailable):
		return http.StatusServiceUnavailable, models.ErrDietServiceUnavailable
	default:
		return http.StatusInternalServerError, models.ErrInternalServer
	}
}

// respondWithError writes err as an APIError and aborts the request
func respondWithError(ctx *gin.Context, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
		message = "Internal server error"
	}
	ctx.AbortWithStatusJSON(status, models.NewAPIError(code, message))
}

// respondInvalidRequest reports a body that failed decoding or validation
func respondInvalidRequest(ctx *gin.Context, err error) {
	if errors.Is(err, errUnsupportedMediaType) {
		respondWithError(ctx, err)
		return
	}
	ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, models.NewAPIError(models.ErrInvalidRequest, err.Error()))
}

func respondNotFound(ctx *gin.Context, kind, key string) {
	ctx.AbortWithStatusJSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, kind+" "+key+" not found"))
}

// MethodNotAllowed answers requests for collection-wide deletion
func MethodNotAllowed(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusMethodNotAllowed,
		models.NewAPIError(models.ErrMethodNotAllowed, "This method is not allowed for the requested URL"))
}

// parseKey interprets a path segment: all digits is an id, anything else a name
func parseKey(raw string) (id int, name string, isID bool) {
	if raw == "" {
		return 0, raw, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, raw, false
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		// out of range; no stored id can match
		return -1, raw, true
	}
	return id, raw, true
}
