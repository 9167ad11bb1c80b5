package controllers

import (
	"errors"
	"log"
	"net/http"

	"cafe-storefront/models"
	"cafe-storefront/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
	cartService     *services.CartService
}

func NewCheckoutController(checkoutService *services.CheckoutService, cartService *services.CartService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
		cartService:     cartService,
	}
}

// @Summary Get checkout state
// @Description Get the session's order draft and current checkout step
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	sessionID := c.GetString("session_id")

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout state retrieved",
		Data: gin.H{
			"draft": ctrl.checkoutService.GetDraft(sessionID),
			"cart":  ctrl.cartService.GetCart(sessionID),
		},
	})
}

// @Summary Submit order details
// @Description Validate the details step; on success the checkout advances to payment
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.OrderDetailsRequest true "Order details"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/details [post]
func (ctrl *CheckoutController) SubmitDetails(c *gin.Context) {
	var req models.OrderDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	sessionID := c.GetString("session_id")
	cartTotal := ctrl.cartService.TotalPrice(sessionID)

	result := ctrl.checkoutService.SubmitDetails(sessionID, req, cartTotal)
	if !result.Valid {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Order details are incomplete",
			Data:    result,
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order details saved",
		Data:    ctrl.checkoutService.GetDraft(sessionID),
	})
}

// @Summary Back to details
// @Description Return from the payment step to the details step; all fields persist
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/back [post]
func (ctrl *CheckoutController) BackToDetails(c *gin.Context) {
	sessionID := c.GetString("session_id")
	ctrl.checkoutService.BackToDetails(sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Returned to details step",
		Data:    ctrl.checkoutService.GetDraft(sessionID),
	})
}

// @Summary Reset checkout
// @Description Discard the session's order draft and start over at the details step
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [delete]
func (ctrl *CheckoutController) ResetCheckout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	ctrl.checkoutService.ResetDraft(sessionID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout reset",
		Data:    ctrl.checkoutService.GetDraft(sessionID),
	})
}

// @Summary Get payment methods
// @Description Get selectable payment methods, always including onsite cash
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /payment-methods [get]
func (ctrl *CheckoutController) GetPaymentMethods(c *gin.Context) {
	methods, err := ctrl.checkoutService.EffectivePaymentMethods(c.Request.Context())
	if err != nil {
		log.Println("Failed to fetch payment methods:", err)
		c.JSON(http.StatusOK, models.Response{
			Success: false,
			Message: "Failed to fetch payment methods",
			Data:    methods,
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment methods retrieved",
		Data:    methods,
	})
}

// @Summary Place order
// @Description Build the order summary and the messenger dispatch link; nothing is recorded server-side
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Payment method selection"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/order [post]
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	sessionID := c.GetString("session_id")
	cart := ctrl.cartService.GetCart(sessionID)
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Cart is empty",
		})
		return
	}

	order, err := ctrl.checkoutService.PlaceOrder(c.Request.Context(), sessionID, req.PaymentMethodID, cart)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, services.ErrDetailsIncomplete) && !errors.Is(err, services.ErrUnknownPaymentMethod) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: "Failed to place order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order ready for dispatch",
		Data:    order,
	})
}
