package handler

import (
	"net/http"

	"github.com/Matoxx01/mikes-backend/pkg/logger"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NominaRequest defines the structure for nomina creation requests
type NominaRequest struct {
	Name     string `json:"name"`
	ClientID uint   `json:"clientId"`
}

// NominaRenameRequest defines the structure for nomina rename requests
type NominaRenameRequest struct {
	NominaID uint   `json:"nominaId"`
	Name     string `json:"name"`
}

// ListNominas handles retrieving the nominas of one client
func (h *Handler) ListNominas(c echo.Context) error {
	log := logger.FromContext(c)

	clientID, ok := queryID(c, "clientId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "clientId query parameter is required"})
	}

	nominas, err := h.store.Nominas(c.Request().Context(), clientID)
	if err != nil {
		log.Error("Failed to list nominas", zap.Uint("client_id", clientID), zap.Error(err))
		return storeError(c, "failed to retrieve nominas", err)
	}

	log.Info("Nominas retrieved successfully",
		zap.Uint("client_id", clientID),
		zap.Int("count", len(nominas)))
	return c.JSON(http.StatusOK, nominas)
}

// CreateNomina handles creating a new nomina under a client
func (h *Handler) CreateNomina(c echo.Context) error {
	log := logger.FromContext(c)

	var req NominaRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.ClientID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and clientId are required"})
	}

	id, err := h.store.CreateNomina(c.Request().Context(), req.Name, req.ClientID)
	if err != nil {
		log.Error("Failed to create nomina",
			zap.String("name", req.Name),
			zap.Uint("client_id", req.ClientID),
			zap.Error(err))
		return storeError(c, "failed to create nomina", err)
	}

	log.Info("Nomina created successfully",
		zap.Uint("nomina_id", id),
		zap.Uint("client_id", req.ClientID))
	return c.JSON(http.StatusCreated, echo.Map{"idNomina": id})
}

// DeleteNomina handles the cascade deletion of a nomina, its users and their
// products, plus the owning client when no nomina of it remains
func (h *Handler) DeleteNomina(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid nomina id"})
	}
	clientID, ok := queryID(c, "clientId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "clientId query parameter is required"})
	}
	log.Info("Deleting nomina", zap.Uint("nomina_id", id), zap.Uint("client_id", clientID))

	if err := h.store.DeleteNomina(c.Request().Context(), id, clientID); err != nil {
		log.Error("Failed to delete nomina",
			zap.Uint("nomina_id", id),
			zap.Uint("client_id", clientID),
			zap.Error(err))
		return storeError(c, "failed to delete nomina", err)
	}

	prometheus.RecordCascadeDelete("nomina")
	log.Info("Nomina deleted successfully", zap.Uint("nomina_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// RenameNomina handles updating a nomina's name
func (h *Handler) RenameNomina(c echo.Context) error {
	log := logger.FromContext(c)

	var req NominaRenameRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.NominaID == 0 || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nominaId and name are required"})
	}

	if err := h.store.RenameNomina(c.Request().Context(), req.NominaID, req.Name); err != nil {
		log.Error("Failed to rename nomina", zap.Uint("nomina_id", req.NominaID), zap.Error(err))
		return storeError(c, "failed to rename nomina", err)
	}

	log.Info("Nomina renamed successfully",
		zap.Uint("nomina_id", req.NominaID),
		zap.String("name", req.Name))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
