package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pinpay/internal/gateway"
	"pinpay/internal/models"
	"pinpay/internal/repository"
)

// CustomerHandler exposes remote customer creation and update.
type CustomerHandler struct {
	gw     *gateway.PinGateway
	store  *repository.Store
	logger *zap.Logger
}

func NewCustomerHandler(gw *gateway.PinGateway, store *repository.Store, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{gw: gw, store: store, logger: logger}
}

// Create stores a card against a new remote customer.
// POST /api/customers
func (h *CustomerHandler) Create(c echo.Context) error {
	return h.storeCard(c, "")
}

// Update replaces the card held by an existing remote customer.
// PUT /api/customers/:token
func (h *CustomerHandler) Update(c echo.Context) error {
	return h.storeCard(c, c.Param("token"))
}

// Get returns a persisted customer by token.
// GET /api/customers/:token
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.store.Customers.FindByToken(c.Param("token"))
	if err != nil {
		return errorResponse(c, http.StatusNotFound, "Customer not found")
	}
	return successResponse(c, "Successful", customer)
}

func (h *CustomerHandler) storeCard(c echo.Context, token string) error {
	var req models.CustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Card == nil {
		return errorResponse(c, http.StatusBadRequest, "card is required")
	}

	opts := gateway.Options{
		Email:          req.Email,
		BillingAddress: toAddress(req.Card.BillingAddress),
		Token:          token,
	}
	result, err := h.gw.StoreCard(c.Request().Context(), toCreditCard(req.Card), opts, !req.DryRun)
	if err != nil {
		h.logger.Error("Store card failed", zap.Error(err))
		return gatewayError(c, err)
	}

	return resultResponse(c, result)
}
