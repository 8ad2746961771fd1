package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pinpay/internal/gateway"
	"pinpay/internal/models"
)

// CardHandler exposes card tokenization.
type CardHandler struct {
	gw     *gateway.PinGateway
	logger *zap.Logger
}

func NewCardHandler(gw *gateway.PinGateway, logger *zap.Logger) *CardHandler {
	return &CardHandler{gw: gw, logger: logger}
}

// Tokenize creates a card token without charging it.
// POST /api/cards
func (h *CardHandler) Tokenize(c echo.Context) error {
	var req models.CardTokenRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Card == nil {
		return errorResponse(c, http.StatusBadRequest, "card is required")
	}

	opts := gateway.Options{BillingAddress: toAddress(req.Card.BillingAddress)}
	result, err := h.gw.Authorize(c.Request().Context(), decimal.Decimal{}, toCreditCard(req.Card), opts)
	if err != nil {
		h.logger.Error("Tokenize failed", zap.Error(err))
		return gatewayError(c, err)
	}

	return resultResponse(c, result)
}
