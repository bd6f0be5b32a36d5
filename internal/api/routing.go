package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/graph"
	"github.com/persistorai/landroute/internal/models"
)

// RouteHandler serves land route queries.
type RouteHandler struct {
	repo RouteRepository
	log  *logrus.Logger
}

// NewRouteHandler creates a RouteHandler with the given repository and logger.
func NewRouteHandler(repo RouteRepository, log *logrus.Logger) *RouteHandler {
	return &RouteHandler{repo: repo, log: log}
}

// Route handles GET /routing/:origin/:destination.
func (h *RouteHandler) Route(c *gin.Context) {
	origin, err := pathCode(c, "origin")
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "origin: "+err.Error())

		return
	}

	destination, err := pathCode(c, "destination")
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "destination: "+err.Error())

		return
	}

	route, err := h.repo.FindRoute(c.Request.Context(), origin, destination)
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, models.RouteResponse{Route: route})
}

func (h *RouteHandler) handleError(c *gin.Context, err error) {
	var re *graph.RouteError

	switch {
	case errors.As(err, &re) && re.Kind == graph.KindUnknownCountry:
		respondError(c, http.StatusBadRequest, ErrCodeUnknownCountry, re.Message)
	case errors.As(err, &re) && re.Kind == graph.KindNoPath:
		respondError(c, http.StatusBadRequest, ErrCodeNoRoute, re.Message)
	case errors.Is(err, models.ErrGraphNotLoaded):
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "border graph not loaded")
	default:
		h.log.WithError(err).Error("finding route")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
