package handler

import (
	"net/http"
	"time"

	"github.com/Matoxx01/mikes-backend/internal/model"
	"github.com/Matoxx01/mikes-backend/pkg/logger"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserRequest defines the structure for user creation requests
type UserRequest struct {
	Rut      string `json:"rut"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Sex      string `json:"sex"`
	Area     string `json:"area"`
	Service  string `json:"service"`
	Center   string `json:"center"`
	NominaID uint   `json:"nominaId"`
	ClientID uint   `json:"clientId"`
}

// CommentRequest defines the structure for comment/signature updates
type CommentRequest struct {
	Comment       *string    `json:"comment"`
	Signature     *string    `json:"signature"`
	SignatureDate *time.Time `json:"signatureDate"`
	PerformedBy   string     `json:"performedBy"`
}

// ListUsers handles retrieving the users of one nomina
func (h *Handler) ListUsers(c echo.Context) error {
	log := logger.FromContext(c)

	nominaID, ok := queryID(c, "nominaId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nominaId query parameter is required"})
	}

	users, err := h.store.Users(c.Request().Context(), nominaID)
	if err != nil {
		log.Error("Failed to list users", zap.Uint("nomina_id", nominaID), zap.Error(err))
		return storeError(c, "failed to retrieve users", err)
	}

	log.Info("Users retrieved successfully",
		zap.Uint("nomina_id", nominaID),
		zap.Int("count", len(users)))
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles creating a single user within a nomina
func (h *Handler) CreateUser(c echo.Context) error {
	log := logger.FromContext(c)

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Rut == "" || req.Name == "" || req.LastName == "" || req.Sex == "" ||
		req.Area == "" || req.Service == "" || req.Center == "" ||
		req.NominaID == 0 || req.ClientID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing data to create user"})
	}

	id, err := h.store.CreateUser(c.Request().Context(), model.User{
		Rut:      req.Rut,
		Name:     req.Name,
		LastName: req.LastName,
		Sex:      req.Sex,
		Area:     req.Area,
		Service:  req.Service,
		Center:   req.Center,
		NominaID: req.NominaID,
		ClientID: req.ClientID,
	})
	if err != nil {
		log.Error("Failed to create user",
			zap.String("rut", req.Rut),
			zap.Uint("nomina_id", req.NominaID),
			zap.Error(err))
		return storeError(c, "failed to create user", err)
	}

	log.Info("User created successfully",
		zap.Uint("user_id", id),
		zap.String("rut", req.Rut))
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "idUser": id})
}

// UpdateUserComment handles updating a user's comment, signature and editor
func (h *Handler) UpdateUserComment(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Comment == nil || req.PerformedBy == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "comment and performedBy are required"})
	}

	err = h.store.UpdateUserComment(c.Request().Context(), id, *req.Comment, req.Signature, req.SignatureDate, req.PerformedBy)
	if err != nil {
		log.Error("Failed to update user comment", zap.Uint("user_id", id), zap.Error(err))
		return storeError(c, "failed to update user", err)
	}

	log.Info("User comment updated",
		zap.Uint("user_id", id),
		zap.String("performed_by", req.PerformedBy),
		zap.Bool("signed", req.Signature != nil && *req.Signature != ""))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteUser handles the cascade deletion of a user and its products
func (h *Handler) DeleteUser(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	log.Info("Deleting user", zap.Uint("user_id", id))

	if err := h.store.DeleteUser(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete user", zap.Uint("user_id", id), zap.Error(err))
		return storeError(c, "failed to delete user", err)
	}

	prometheus.RecordCascadeDelete("user")
	log.Info("User deleted successfully", zap.Uint("user_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// SearchUsers handles the free-text lookup over rut, name and last name
func (h *Handler) SearchUsers(c echo.Context) error {
	log := logger.FromContext(c)

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusOK, []model.User{})
	}

	users, err := h.store.SearchUsers(c.Request().Context(), query)
	if err != nil {
		log.Error("Failed to search users", zap.String("query", query), zap.Error(err))
		return storeError(c, "failed to search users", err)
	}

	log.Info("User search completed", zap.String("query", query), zap.Int("count", len(users)))
	return c.JSON(http.StatusOK, users)
}
