package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/product-dashboard-api/internal/cart/domain"
	cartRepo "github.com/ridloal/product-dashboard-api/internal/cart/repository"
	"github.com/ridloal/product-dashboard-api/internal/cart/service"
	catalogRepo "github.com/ridloal/product-dashboard-api/internal/catalog/repository"
	"github.com/ridloal/product-dashboard-api/internal/platform/logger"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Use(SessionMiddleware())
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.POST("/add", h.AddToCart)
		cartRoutes.PUT("/:itemId", h.UpdateCartItem)
		cartRoutes.DELETE("/clear", h.ClearCart)
		cartRoutes.DELETE("/:itemId", h.RemoveFromCart)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.cartService.GetCart(c.Request.Context(), sessionID(c))
	if err != nil {
		logger.Error("GetCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req domain.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("AddToCart: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	result, err := h.cartService.AddItem(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		logger.Error("AddToCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	var req domain.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("UpdateCartItem: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	result, err := h.cartService.UpdateItem(c.Request.Context(), sessionID(c), itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
			return
		}
		logger.Error("UpdateCartItem: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return
	}

	result, err := h.cartService.RemoveItem(c.Request.Context(), sessionID(c), itemID)
	if err != nil {
		logger.Error("RemoveFromCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	result, err := h.cartService.ClearCart(c.Request.Context(), sessionID(c))
	if err != nil {
		logger.Error("ClearCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, result)
}
