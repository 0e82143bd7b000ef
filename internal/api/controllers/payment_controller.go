package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dynastytrade/internal/services"
	"dynastytrade/pkg/middleware"
	"dynastytrade/pkg/utils"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBody = 64 * 1024

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateCheckout godoc
// @Summary Start a pro subscription checkout
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/create-checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	checkout, err := p.paymentService.CreateCheckout(c.Request.Context(), account)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout session created")
}

// HandleWebhook receives Stripe events. The signature header is verified
// before anything is applied, so this route stays unauthenticated.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read webhook body")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := p.paymentService.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Webhook processed")
}

// PaymentSuccess handles the checkout success redirect: it confirms the
// session with Stripe and sends the user back to the dashboard.
func (p *PaymentController) PaymentSuccess(c *gin.Context) {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	sessionID := c.Query("session_id")
	if err := p.paymentService.ConfirmCheckout(c.Request.Context(), account, sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	utils.RespondSuccess(c, nil, "Subscription activated")
}

// PaymentCancel handles the checkout cancel redirect.
func (p *PaymentController) PaymentCancel(c *gin.Context) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/upgrade")
		return
	}
	utils.RespondSuccess(c, nil, "Checkout cancelled")
}
