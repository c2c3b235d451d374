package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopdash/shopdash/engine/payment/uc"
	"github.com/shopdash/shopdash/pkg/logger"
)

// CreateIntentRequest is the payload for requesting a charge intent.
type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

// Handler handles payment-related HTTP requests
type Handler struct {
	factory *uc.Factory
}

// NewHandler creates a new payment handler
func NewHandler(factory *uc.Factory) *Handler {
	return &Handler{factory: factory}
}

// CreateIntent requests a charge intent from the gateway and returns the
// client secret the caller needs to complete the charge.
func (h *Handler) CreateIntent(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	clientSecret, err := h.factory.CreateIntent(req.Price).Execute(ctx)
	if err != nil {
		log.Error("failed to create payment intent", "error", err, "price", req.Price)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment settles a checkout: the payment is recorded and the cart
// entries it references are cleared.
func (h *Handler) RecordPayment(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	var input uc.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	out, err := h.factory.RecordPayment(&input).Execute(ctx)
	if err != nil {
		log.Error("failed to process payment", "error", err, "email", input.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the payment."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"paymentResult": gin.H{"insertedId": out.InsertedID.Hex()},
		"deleteResult":  gin.H{"deletedCount": out.DeletedCount},
	})
}

// ListPayments returns all payments matching the email query parameter.
// The filter is the caller-supplied email, not the authenticated identity.
func (h *Handler) ListPayments(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	email := c.Query("email")
	payments, err := h.factory.ListPayments(email).Execute(ctx)
	if err != nil {
		log.Error("failed to list payments", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the payment records."})
		return
	}
	c.JSON(http.StatusOK, payments)
}
