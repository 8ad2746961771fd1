package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"pinpay/internal/gateway"
	"pinpay/internal/models"
)

// Response helpers shared by all handlers.
func successResponse(c echo.Context, msg string, obj interface{}) error {
	return c.JSON(http.StatusOK, models.APIResponse{
		Status: true,
		Msg:    msg,
		Obj:    obj,
	})
}

func errorResponse(c echo.Context, code int, msg string) error {
	return c.JSON(code, models.APIResponse{
		Status: false,
		Msg:    msg,
		Obj:    nil,
	})
}

// gatewayError maps gateway errors onto HTTP statuses. Remote FAILURE never
// lands here; it is a normal result.
func gatewayError(c echo.Context, err error) error {
	var missing *gateway.RequiredFieldError
	switch {
	case errors.As(err, &missing):
		return errorResponse(c, http.StatusBadRequest, missing.Error())
	case errors.Is(err, gateway.ErrNotImplemented):
		return errorResponse(c, http.StatusNotImplemented, err.Error())
	default:
		return errorResponse(c, http.StatusBadGateway, "Gateway request failed")
	}
}

// resultResponse renders the uniform gateway result.
func resultResponse(c echo.Context, result *gateway.Result) error {
	obj := map[string]interface{}{
		"gateway_status": result.Status,
		"response":       result.Response,
		"entity":         result.Entity,
	}
	if result.Status != gateway.StatusSuccess {
		return successResponse(c, "Declined", obj)
	}
	return successResponse(c, "Successful", obj)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(raw)
}

func toCreditCard(req *models.CardRequest) gateway.CreditCard {
	return gateway.CreditCard{
		Number:            req.Number,
		Month:             req.ExpiryMonth,
		Year:              req.ExpiryYear,
		VerificationValue: req.CVC,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
	}
}

func toAddress(req *models.AddressRequest) *gateway.Address {
	if req == nil {
		return nil
	}
	return &gateway.Address{
		Line1:    req.Line1,
		Line2:    req.Line2,
		City:     req.City,
		Postcode: req.Postcode,
		State:    req.State,
		Country:  req.Country,
	}
}
