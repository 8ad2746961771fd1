package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pinpay/internal/gateway"
	"pinpay/internal/models"
	"pinpay/internal/notify"
)

type stubTransport struct {
	reply map[string]interface{}
	calls int
}

func (s *stubTransport) Request(_ context.Context, method, path string, body interface{}) (map[string]interface{}, error) {
	s.calls++
	return s.reply, nil
}

type fakeStore struct {
	cards   []*models.PinCard
	charges []*models.PinCharge
	refunds []*models.PinRefund
}

func (f *fakeStore) CreateCard(card *models.PinCard) error {
	card.ID = uint(len(f.cards) + 1)
	f.cards = append(f.cards, card)
	return nil
}

func (f *fakeStore) CreateCharge(charge *models.PinCharge) error {
	f.charges = append(f.charges, charge)
	return nil
}

func (f *fakeStore) CreateRefund(refund *models.PinRefund) error {
	f.refunds = append(f.refunds, refund)
	return nil
}

func (f *fakeStore) FindCustomerByToken(string) (*models.PinCustomer, error) {
	return nil, nil
}

func (f *fakeStore) SaveCustomer(*models.PinCustomer) error {
	return nil
}

type droppingNotifier struct{}

func (droppingNotifier) Publish(notify.Event) {}

func successReply() map[string]interface{} {
	return map[string]interface{}{
		"response": map[string]interface{}{
			"success":       true,
			"token":         "ch_lfUYEBK14zotCTykezJkfg",
			"amount":        "999",
			"currency":      "AUD",
			"error_message": nil,
		},
	}
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/charges", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func newChargeHandler(reply map[string]interface{}) (*ChargeHandler, *stubTransport, *fakeStore) {
	transport := &stubTransport{reply: reply}
	store := &fakeStore{}
	gw := gateway.New(transport, store, droppingNotifier{}, zap.NewNop())
	return NewChargeHandler(gw, nil, zap.NewNop()), transport, store
}

func TestChargeCreatePurchase(t *testing.T) {
	handler, transport, store := newChargeHandler(successReply())

	body := `{
		"amount": "9.99",
		"email": "roland@pin.net.au",
		"card": {
			"number": "5520000000000000",
			"expiry_month": 5,
			"expiry_year": 2026,
			"cvc": "123",
			"first_name": "Roland",
			"last_name": "Robot",
			"billing_address": {
				"line1": "42 Sevenoaks St",
				"city": "Lathlain",
				"postcode": "6454",
				"state": "WA",
				"country": "Australia"
			}
		}
	}`
	rec, resp := postJSON(t, handler.Create, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Status)
	require.Equal(t, 1, transport.calls)
	require.Len(t, store.cards, 1)
	require.Len(t, store.charges, 1)
}

func TestChargeCreateDryRun(t *testing.T) {
	handler, transport, store := newChargeHandler(successReply())

	body := `{"amount": "9.99", "token": "card_nytGw7koRg23EEp9NTmz9w", "dry_run": true}`
	rec, resp := postJSON(t, handler.Create, body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Status)
	require.Equal(t, 1, transport.calls)
	require.Empty(t, store.charges)
}

func TestChargeCreateInvalidAmount(t *testing.T) {
	handler, transport, _ := newChargeHandler(successReply())

	rec, resp := postJSON(t, handler.Create, `{"amount": "nine", "token": "card_abc"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, resp.Status)
	require.Zero(t, transport.calls)
}

func TestChargeCreateNeitherCardNorToken(t *testing.T) {
	handler, transport, _ := newChargeHandler(successReply())

	rec, resp := postJSON(t, handler.Create, `{"amount": "9.99"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, resp.Status)
	require.Zero(t, transport.calls)
}

func TestChargeCreateMissingBillingAddress(t *testing.T) {
	handler, transport, _ := newChargeHandler(successReply())

	body := `{"amount": "9.99", "card": {"number": "5520000000000000"}}`
	rec, resp := postJSON(t, handler.Create, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, resp.Status)
	require.Contains(t, resp.Msg, "billing_address")
	require.Zero(t, transport.calls)
}
