package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pinpay/internal/gateway"
	"pinpay/internal/models"
	"pinpay/internal/repository"
)

// ChargeHandler exposes charge creation, lookup and refunds.
type ChargeHandler struct {
	gw     *gateway.PinGateway
	store  *repository.Store
	logger *zap.Logger
}

func NewChargeHandler(gw *gateway.PinGateway, store *repository.Store, logger *zap.Logger) *ChargeHandler {
	return &ChargeHandler{gw: gw, store: store, logger: logger}
}

// Create charges a card or token.
// POST /api/charges
func (h *ChargeHandler) Create(c echo.Context) error {
	var req models.ChargeRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid request body")
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid amount: "+req.Amount)
	}

	opts := gateway.Options{
		Email:       req.Email,
		Description: req.Description,
		Currency:    req.Currency,
		IPAddress:   req.IPAddress,
	}
	commit := !req.DryRun

	var result *gateway.Result
	switch {
	case req.Token != "":
		result, err = h.gw.Capture(c.Request().Context(), amount, req.Token, opts, commit)
	case req.Card != nil:
		opts.BillingAddress = toAddress(req.Card.BillingAddress)
		result, err = h.gw.Purchase(c.Request().Context(), amount, toCreditCard(req.Card), opts, commit)
	default:
		return errorResponse(c, http.StatusBadRequest, "Either card or token is required")
	}
	if err != nil {
		h.logger.Error("Charge failed", zap.Error(err))
		return gatewayError(c, err)
	}

	return resultResponse(c, result)
}

// List returns persisted charges with pagination.
// GET /api/charges
func (h *ChargeHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	page, _ := strconv.Atoi(c.QueryParam("page"))

	charges, total, err := h.store.Charges.FindAll(limit, page)
	if err != nil {
		h.logger.Error("Failed to list charges", zap.Error(err))
		return errorResponse(c, http.StatusInternalServerError, "Failed to retrieve charges")
	}
	return successResponse(c, "Successful", map[string]interface{}{
		"charges": charges,
		"total":   total,
	})
}

// Get returns a persisted charge by token.
// GET /api/charges/:token
func (h *ChargeHandler) Get(c echo.Context) error {
	charge, err := h.store.Charges.FindByToken(c.Param("token"))
	if err != nil {
		return errorResponse(c, http.StatusNotFound, "Charge not found")
	}
	return successResponse(c, "Successful", charge)
}

// Refund refunds a charge in full.
// POST /api/charges/:token/refunds
func (h *ChargeHandler) Refund(c echo.Context) error {
	var req models.RefundRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid request body")
	}

	token := c.Param("token")
	result, err := h.gw.Credit(c.Request().Context(), decimal.Decimal{}, token, gateway.Options{}, !req.DryRun)
	if err != nil {
		h.logger.Error("Refund failed", zap.String("charge", token), zap.Error(err))
		return gatewayError(c, err)
	}

	return resultResponse(c, result)
}

// ListRefunds returns the refunds recorded against a charge.
// GET /api/charges/:token/refunds
func (h *ChargeHandler) ListRefunds(c echo.Context) error {
	refunds, err := h.store.Refunds.FindByChargeToken(c.Param("token"))
	if err != nil {
		h.logger.Error("Failed to list refunds", zap.Error(err))
		return errorResponse(c, http.StatusInternalServerError, "Failed to retrieve refunds")
	}
	return successResponse(c, "Successful", refunds)
}
