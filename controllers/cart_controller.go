package controllers

import (
	"log"
	"net/http"

	"cafe-storefront/models"
	"cafe-storefront/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService    *services.CartService
	catalogService *services.CatalogService
}

func NewCartController(cartService *services.CartService, catalogService *services.CatalogService) *CartController {
	return &CartController{
		cartService:    cartService,
		catalogService: catalogService,
	}
}

// @Summary Get cart
// @Description Get the session's cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data:    ctrl.cartService.GetCart(sessionID),
	})
}

// @Summary Add to cart
// @Description Add a configured menu item; identical configurations merge into one line
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Item configuration"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.catalogService.GetMenuItem(c.Request.Context(), req.ItemID)
	if err != nil {
		log.Println("Failed to fetch menu item:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch menu item",
		})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return
	}

	var variation *models.Variation
	if req.VariationID != "" {
		for i := range item.Variations {
			if item.Variations[i].ID == req.VariationID {
				variation = &item.Variations[i]
				break
			}
		}
		if variation == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Unknown variation for this item",
			})
			return
		}
	}

	addOns := make([]models.SelectedAddOn, 0, len(req.AddOns))
	for _, sel := range req.AddOns {
		var match *models.AddOn
		for i := range item.AddOns {
			if item.AddOns[i].ID == sel.ID {
				match = &item.AddOns[i]
				break
			}
		}
		if match == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Unknown add-on for this item",
			})
			return
		}
		addOns = append(addOns, models.SelectedAddOn{AddOn: *match, Quantity: sel.Quantity})
	}

	sessionID := c.GetString("session_id")
	ctrl.cartService.AddToCart(sessionID, item, req.Quantity, variation, addOns)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    ctrl.cartService.GetCart(sessionID),
	})
}

// @Summary Update cart line quantity
// @Description Set a line's quantity; zero or below removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart line id"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	sessionID := c.GetString("session_id")
	ctrl.cartService.UpdateQuantity(sessionID, c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated",
		Data:    ctrl.cartService.GetCart(sessionID),
	})
}

// @Summary Remove cart line
// @Description Delete a line from the cart; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param id path string true "Cart line id"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	sessionID := c.GetString("session_id")
	ctrl.cartService.RemoveFromCart(sessionID, c.Param("id"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    ctrl.cartService.GetCart(sessionID),
	})
}

// @Summary Clear cart
// @Description Empty the session's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	ctrl.cartService.ClearCart(sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    ctrl.cartService.GetCart(sessionID),
	})
}
