package handler

import (
	"net/http"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

type Catalog struct {
	service CatalogService
	l       logger.Logger
}

type CatalogService interface {
	TurkishCities() []models.City
	WorldCities() []models.City
	CalculationMethods() []models.CalculationMethod
	ValidMethod(id int) bool
}

func NewCatalog(service CatalogService, l logger.Logger) *Catalog {
	return &Catalog{
		service: service,
		l:       l,
	}
}

// TurkishCities godoc
// @Summary      Turkish cities
// @Description  Returns the built-in list of Turkish cities with coordinates
// @Tags         Catalog
// @Produce      json
// @Success      200  {array}  models.City
// @Router       /api/cities/turkey [get]
func (h *Catalog) TurkishCities(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, "turkish_cities", envelope{"cities": h.service.TurkishCities()})
}

// WorldCities godoc
// @Summary      World cities
// @Description  Returns the built-in list of world cities with coordinates
// @Tags         Catalog
// @Produce      json
// @Success      200  {array}  models.City
// @Router       /api/cities/world [get]
func (h *Catalog) WorldCities(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, "world_cities", envelope{"cities": h.service.WorldCities()})
}

// CalculationMethods godoc
// @Summary      Calculation methods
// @Description  Returns the supported prayer time calculation methods
// @Tags         Catalog
// @Produce      json
// @Success      200  {array}  models.CalculationMethod
// @Router       /api/calculation-methods [get]
func (h *Catalog) CalculationMethods(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, "calculation_methods", envelope{"methods": h.service.CalculationMethods()})
}

func (h *Catalog) writeList(w http.ResponseWriter, r *http.Request, action string, response envelope) {
	ctx := wrap.WithAction(r.Context(), action)

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
		return
	}
}
