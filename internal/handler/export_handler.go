package handler

import (
	"net/http"
	"time"

	"github.com/Matoxx01/mikes-backend/pkg/logger"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UsersWithProducts handles the aggregated read of one nomina: every user
// with its products nested
func (h *Handler) UsersWithProducts(c echo.Context) error {
	log := logger.FromContext(c)

	nominaID, ok := queryID(c, "nominaId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nominaId query parameter is required"})
	}

	defer prometheus.TrackDBOperation("users_with_products")(time.Now())
	users, err := h.store.UsersWithProducts(c.Request().Context(), nominaID)
	if err != nil {
		log.Error("Failed to aggregate users with products",
			zap.Uint("nomina_id", nominaID),
			zap.Error(err))
		return storeError(c, "failed to retrieve users with products", err)
	}

	log.Info("Users with products retrieved",
		zap.Uint("nomina_id", nominaID),
		zap.Int("count", len(users)))
	return c.JSON(http.StatusOK, users)
}

// ExportExcel handles the flat export rows for the spreadsheet generator
func (h *Handler) ExportExcel(c echo.Context) error {
	log := logger.FromContext(c)

	nominaID, ok := queryID(c, "nominaId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nominaId query parameter is required"})
	}

	defer prometheus.TrackDBOperation("export_excel")(time.Now())
	rows, err := h.store.ExportRows(c.Request().Context(), nominaID)
	if err != nil {
		log.Error("Failed to export nomina", zap.Uint("nomina_id", nominaID), zap.Error(err))
		return storeError(c, "failed to export data", err)
	}

	log.Info("Export rows retrieved",
		zap.Uint("nomina_id", nominaID),
		zap.Int("rows", len(rows)))
	return c.JSON(http.StatusOK, rows)
}

// ExportOptimized handles the single-query export: the same joined data as
// ExportExcel but already folded per user, so the spreadsheet builder does
// not have to group rows itself
func (h *Handler) ExportOptimized(c echo.Context) error {
	log := logger.FromContext(c)

	nominaID, ok := queryID(c, "nominaId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nominaId query parameter is required"})
	}

	defer prometheus.TrackDBOperation("export_optimized")(time.Now())
	users, err := h.store.UsersWithProducts(c.Request().Context(), nominaID)
	if err != nil {
		log.Error("Failed to export nomina", zap.Uint("nomina_id", nominaID), zap.Error(err))
		return storeError(c, "failed to export data", err)
	}

	log.Info("Optimized export completed",
		zap.Uint("nomina_id", nominaID),
		zap.Int("users", len(users)))
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// Report handles the signature progress summary of one nomina
func (h *Handler) Report(c echo.Context) error {
	log := logger.FromContext(c)

	nominaID, ok := queryID(c, "nominaId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nominaId query parameter is required"})
	}

	report, err := h.store.Report(c.Request().Context(), nominaID)
	if err != nil {
		log.Error("Failed to build report", zap.Uint("nomina_id", nominaID), zap.Error(err))
		return storeError(c, "failed to build report", err)
	}

	log.Info("Report built",
		zap.Uint("nomina_id", nominaID),
		zap.Int64("total", report.Total),
		zap.Int64("signed", report.Signed))
	return c.JSON(http.StatusOK, report)
}
