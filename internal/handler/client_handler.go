package handler

import (
	"net/http"

	"github.com/Matoxx01/mikes-backend/pkg/logger"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClientRequest defines the structure for client creation/rename requests
type ClientRequest struct {
	Name string `json:"name"`
}

// ListClients handles retrieving all clients
func (h *Handler) ListClients(c echo.Context) error {
	log := logger.FromContext(c)

	clients, err := h.store.Clients(c.Request().Context())
	if err != nil {
		log.Error("Failed to list clients", zap.Error(err))
		return storeError(c, "failed to retrieve clients", err)
	}

	log.Info("Clients retrieved successfully", zap.Int("count", len(clients)))
	return c.JSON(http.StatusOK, clients)
}

// CreateClient handles creating a new client
func (h *Handler) CreateClient(c echo.Context) error {
	log := logger.FromContext(c)

	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	id, err := h.store.CreateClient(c.Request().Context(), req.Name)
	if err != nil {
		log.Error("Failed to create client", zap.String("name", req.Name), zap.Error(err))
		return storeError(c, "failed to create client", err)
	}

	log.Info("Client created successfully", zap.Uint("client_id", id), zap.String("name", req.Name))
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": id})
}

// DeleteClient handles the cascade deletion of a client and everything it owns
func (h *Handler) DeleteClient(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
	}
	log.Info("Deleting client", zap.Uint("client_id", id))

	if err := h.store.DeleteClient(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete client", zap.Uint("client_id", id), zap.Error(err))
		return storeError(c, "failed to delete client", err)
	}

	prometheus.RecordCascadeDelete("client")
	log.Info("Client deleted successfully", zap.Uint("client_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// RenameClient handles updating a client's name
func (h *Handler) RenameClient(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
	}

	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	if err := h.store.RenameClient(c.Request().Context(), id, req.Name); err != nil {
		log.Error("Failed to rename client", zap.Uint("client_id", id), zap.Error(err))
		return storeError(c, "failed to rename client", err)
	}

	log.Info("Client renamed successfully", zap.Uint("client_id", id), zap.String("name", req.Name))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
