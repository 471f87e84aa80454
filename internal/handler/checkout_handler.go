package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rhenando/hyperpay-api/internal/domain"
	"github.com/rhenando/hyperpay-api/internal/gateway"
	"github.com/rhenando/hyperpay-api/internal/repository"
	"go.uber.org/zap"
)

type GatewayContract interface {
	CreateCheckout(ctx context.Context, params url.Values) (string, error)
	FetchResourceStatus(ctx context.Context, resourcePath string) (*domain.TransactionResult, error)
}

type FulfillmentContract interface {
	FulfillOrder(ctx context.Context, result *domain.TransactionResult, buyerID, supplierID, requestID string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type CheckoutHandler struct {
	gateway         GatewayContract
	fulfillment     FulfillmentContract
	entityID        string
	currency        string
	redirectBaseURL string
	logger          *zap.Logger
}

func NewCheckoutHandler(gw GatewayContract, fulfillment FulfillmentContract, entityID, currency, redirectBaseURL string, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		gateway:         gw,
		fulfillment:     fulfillment,
		entityID:        entityID,
		currency:        currency,
		redirectBaseURL: redirectBaseURL,
		logger:          logger,
	}
}

// CreateCheckout opens a gateway checkout session and hands the checkout id
// back to the storefront so the hosted widget can attach to it.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req domain.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	params, err := gateway.BuildCheckoutParams(req, h.entityID, h.currency)
	if err != nil {
		if errors.Is(err, gateway.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	checkoutID, err := h.gateway.CreateCheckout(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Failed to create checkout session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.CreateCheckoutResponse{CheckoutID: checkoutID})
}

// PaymentStatus is the redirect target the shopper lands on after the
// hosted widget completes. It resolves the final transaction result and, on
// approval only, runs the fulfillment pipeline before redirecting to the
// storefront's order page; declines bounce to the failure page with the
// gateway's code and description attached.
func (h *CheckoutHandler) PaymentStatus(c *gin.Context) {
	resourcePath := c.Query("resourcePath")
	buyerID := c.Query("buyerId")
	supplierID := c.Query("supplierId")
	if resourcePath == "" || buyerID == "" || supplierID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resourcePath, buyerId and supplierId are required"})
		return
	}

	requestID := c.GetString("request_id")

	result, err := h.gateway.FetchResourceStatus(c.Request.Context(), resourcePath)
	if err != nil {
		h.logger.Error("Failed to fetch payment status",
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if gateway.Classify(result.ResultCode) != gateway.OutcomeApproved {
		h.logger.Info("Payment declined",
			zap.String("transaction_id", result.TransactionID),
			zap.String("result_code", result.ResultCode),
			zap.String("result_description", result.ResultDescription))
		q := url.Values{}
		q.Set("code", result.ResultCode)
		q.Set("description", result.ResultDescription)
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/payment-failed?%s", h.redirectBaseURL, q.Encode()))
		return
	}

	order, err := h.fulfillment.FulfillOrder(c.Request.Context(), result, buyerID, supplierID, requestID)
	if err != nil {
		h.logger.Error("Fulfillment failed",
			zap.String("transaction_id", result.TransactionID),
			zap.String("request_id", requestID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error verifying payment"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/order/%s", h.redirectBaseURL, order.OrderID))
}

type verifyRequest struct {
	ResourcePath string `json:"resourcePath" binding:"required"`
}

// VerifyPayment resolves and returns the transaction result without any
// persistence, for client-side status display.
func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "resourcePath is required"})
		return
	}

	result, err := h.gateway.FetchResourceStatus(c.Request.Context(), req.ResourcePath)
	if err != nil {
		h.logger.Error("Failed to verify payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"transactionId": result.TransactionID,
		"amount":        result.Amount,
		"paymentType":   result.PaymentType,
		"cardBrand":     result.CardBrand,
		"customerName":  result.BuyerName,
		"customerEmail": result.BuyerEmail,
		"billing":       result.Billing,
		"resourcePath":  req.ResourcePath,
	})
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, err := h.fulfillment.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}
