package handler

import (
	"net/http"

	"github.com/Matoxx01/mikes-backend/internal/model"
	"github.com/Matoxx01/mikes-backend/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation requests
type ProductRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
	UserID   uint   `json:"userId"`
	NominaID uint   `json:"nominaId"`
	ClientID uint   `json:"clientId"`
}

// QuantityRequest defines the structure for quantity updates
type QuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// SizeRequest defines the structure for size updates
type SizeRequest struct {
	Size string `json:"size"`
}

// ListProducts handles retrieving the products of one user
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	userID, ok := queryID(c, "userId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId query parameter is required"})
	}

	products, err := h.store.Products(c.Request().Context(), userID)
	if err != nil {
		log.Error("Failed to list products", zap.Uint("user_id", userID), zap.Error(err))
		return storeError(c, "failed to retrieve products", err)
	}

	log.Info("Products retrieved successfully",
		zap.Uint("user_id", userID),
		zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// ListAllProducts handles retrieving every product
func (h *Handler) ListAllProducts(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := h.store.AllProducts(c.Request().Context())
	if err != nil {
		log.Error("Failed to list all products", zap.Error(err))
		return storeError(c, "failed to retrieve products", err)
	}

	log.Info("All products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// AddProduct handles creating a product for a user, returning the generated id
func (h *Handler) AddProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" || req.UserID == 0 || req.NominaID == 0 || req.ClientID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, userId, nominaId and clientId are required"})
	}

	id, err := h.store.CreateProduct(c.Request().Context(), model.Product{
		SKU:      req.SKU,
		Name:     req.Name,
		Color:    req.Color,
		Quantity: req.Quantity,
		Size:     req.Size,
		UserID:   req.UserID,
		NominaID: req.NominaID,
		ClientID: req.ClientID,
	})
	if err != nil {
		log.Error("Failed to create product",
			zap.String("sku", req.SKU),
			zap.Uint("user_id", req.UserID),
			zap.Error(err))
		return storeError(c, "failed to create product", err)
	}

	log.Info("Product created successfully",
		zap.Uint("product_id", id),
		zap.String("sku", req.SKU),
		zap.Uint("user_id", req.UserID))
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "idProduct": id})
}

// UpdateProductQuantity handles updating a product's quantity
func (h *Handler) UpdateProductQuantity(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Quantity == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity is required"})
	}

	if err := h.store.UpdateProductQuantity(c.Request().Context(), id, *req.Quantity); err != nil {
		log.Error("Failed to update product quantity", zap.Uint("product_id", id), zap.Error(err))
		return storeError(c, "failed to update product", err)
	}

	log.Info("Product quantity updated",
		zap.Uint("product_id", id),
		zap.Int("quantity", *req.Quantity))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// UpdateProductSize handles updating a product's size
func (h *Handler) UpdateProductSize(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req SizeRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Size == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "size is required"})
	}

	if err := h.store.UpdateProductSize(c.Request().Context(), id, req.Size); err != nil {
		log.Error("Failed to update product size", zap.Uint("product_id", id), zap.Error(err))
		return storeError(c, "failed to update product", err)
	}

	log.Info("Product size updated",
		zap.Uint("product_id", id),
		zap.String("size", req.Size))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteProduct handles deleting a single product
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := paramID(c, "id")
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	if err := h.store.DeleteProduct(c.Request().Context(), id); err != nil {
		log.Error("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		return storeError(c, "failed to delete product", err)
	}

	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
