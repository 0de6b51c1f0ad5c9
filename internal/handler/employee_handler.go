package handler

import (
	"net/http"

	"github.com/Matoxx01/mikes-backend/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EmployeeRequest defines the structure for employee creation/update requests
type EmployeeRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListEmployees handles retrieving every employee account
func (h *Handler) ListEmployees(c echo.Context) error {
	log := logger.FromContext(c)

	employees, err := h.store.Employees(c.Request().Context())
	if err != nil {
		log.Error("Failed to list employees", zap.Error(err))
		return storeError(c, "failed to retrieve employees", err)
	}

	log.Info("Employees retrieved successfully", zap.Int("count", len(employees)))
	return c.JSON(http.StatusOK, employees)
}

// CreateEmployee handles creating a new employee account
func (h *Handler) CreateEmployee(c echo.Context) error {
	log := logger.FromContext(c)

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, password and role are required"})
	}

	id, err := h.store.CreateEmployee(c.Request().Context(), req.Name, req.Password, req.Role)
	if err != nil {
		log.Error("Failed to create employee", zap.String("name", req.Name), zap.Error(err))
		return storeError(c, "failed to create employee", err)
	}

	log.Info("Employee created successfully",
		zap.Uint("employee_id", id),
		zap.String("name", req.Name),
		zap.String("role", req.Role))
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": id})
}

// UpdateEmployee handles replacing an employee's name, password and role
func (h *Handler) UpdateEmployee(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid employee id"})
	}

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.Password == "" || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, password and role are required"})
	}

	if err := h.store.UpdateEmployee(c.Request().Context(), id, req.Name, req.Password, req.Role); err != nil {
		log.Error("Failed to update employee", zap.Uint("employee_id", id), zap.Error(err))
		return storeError(c, "failed to update employee", err)
	}

	log.Info("Employee updated successfully", zap.Uint("employee_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteEmployee handles removing an employee account
func (h *Handler) DeleteEmployee(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid employee id"})
	}

	if err := h.store.DeleteEmployee(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete employee", zap.Uint("employee_id", id), zap.Error(err))
		return storeError(c, "failed to delete employee", err)
	}

	log.Info("Employee deleted successfully", zap.Uint("employee_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
