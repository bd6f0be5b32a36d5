package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/models"
)

// CountryHandler serves country listing and neighbour lookup endpoints.
type CountryHandler struct {
	repo CountryRepository
	log  *logrus.Logger
}

// NewCountryHandler creates a CountryHandler with the given repository and logger.
func NewCountryHandler(repo CountryRepository, log *logrus.Logger) *CountryHandler {
	return &CountryHandler{repo: repo, log: log}
}

// List handles GET /api/v1/countries.
func (h *CountryHandler) List(c *gin.Context) {
	result, err := h.repo.Countries(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "listing countries")

		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/v1/countries/:code.
func (h *CountryHandler) Get(c *gin.Context) {
	code, err := pathCode(c, "code")
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.repo.Country(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err, "getting country")

		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CountryHandler) handleError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, models.ErrCountryNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "country not found")
	case errors.Is(err, models.ErrGraphNotLoaded):
		respondError(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "border graph not loaded")
	default:
		h.log.WithError(err).Error(op)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
