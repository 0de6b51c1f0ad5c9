package handler

import (
	"errors"
	"net/http"

	"github.com/Matoxx01/mikes-backend/internal/store"
	"github.com/Matoxx01/mikes-backend/pkg/jwtutil"
	"github.com/Matoxx01/mikes-backend/pkg/logger"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Login authenticates an employee by name and password
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Name == "" || req.Password == "" {
		prometheus.RecordAuthError("missing_credentials")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and password are required"})
	}

	employee, err := h.store.Authenticate(c.Request().Context(), req.Name, req.Password)
	if errors.Is(err, store.ErrUnknownName) {
		log.Warn("Login with unknown name", zap.String("name", req.Name))
		prometheus.RecordAuthError("unknown_name")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown name"})
	}
	if errors.Is(err, store.ErrWrongPassword) {
		log.Warn("Login with wrong password", zap.String("name", req.Name))
		prometheus.RecordAuthError("wrong_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "wrong password"})
	}
	if err != nil {
		log.Error("Login failed", zap.Error(err))
		return storeError(c, "login failed", err)
	}

	token, err := jwtutil.GenerateToken(employee.ID, employee.Name, employee.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("Employee logged in",
		zap.String("name", employee.Name),
		zap.String("role", employee.Role))
	return c.JSON(http.StatusOK, echo.Map{
		"role":  employee.Role,
		"name":  employee.Name,
		"token": token,
	})
}
