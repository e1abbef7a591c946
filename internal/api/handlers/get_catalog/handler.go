package get_catalog

import (
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCatalog(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to get catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
