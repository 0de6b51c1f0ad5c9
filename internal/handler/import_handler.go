package handler

import (
	"errors"
	"net/http"

	"github.com/Matoxx01/mikes-backend/internal/store"
	"github.com/Matoxx01/mikes-backend/pkg/logger"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BulkImportRequest is the payload of a bulk import: one nomina scope plus
// the user entries, each optionally carrying products
type BulkImportRequest struct {
	NominaID uint             `json:"nominaId"`
	ClientID uint             `json:"clientId"`
	Users    []store.BulkUser `json:"users"`
}

// BulkImport handles the batched import of users and their products
func (h *Handler) BulkImport(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.BulkImportCounter.Inc()

	var req BulkImportRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid bulk import payload", zap.Error(err))
		prometheus.RecordBulkImportError("invalid_payload")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	log.Info("Starting bulk import",
		zap.Uint("nomina_id", req.NominaID),
		zap.Uint("client_id", req.ClientID),
		zap.Int("users", len(req.Users)))

	result, err := h.store.BulkImport(c.Request().Context(), req.NominaID, req.ClientID, req.Users)
	if err != nil {
		var resolution *store.ResolutionError
		switch {
		case errors.Is(err, store.ErrInvalidPayload):
			log.Warn("Bulk import rejected", zap.Error(err))
			prometheus.RecordBulkImportError("invalid_payload")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.As(err, &resolution):
			log.Warn("Bulk import could not resolve an inserted user",
				zap.String("rut", resolution.Rut))
			prometheus.RecordBulkImportError("resolution_failed")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": resolution.Error()})
		default:
			log.Error("Bulk import failed", zap.Error(err))
			prometheus.RecordBulkImportError("internal")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bulk import failed: " + err.Error()})
		}
	}

	prometheus.RecordBulkImportedRows("app_user", result.InsertedUsers)
	prometheus.RecordBulkImportedRows("product", result.InsertedProducts)
	log.Info("Bulk import completed",
		zap.Int("inserted_users", result.InsertedUsers),
		zap.Int("inserted_products", result.InsertedProducts))
	return c.JSON(http.StatusOK, result)
}
