package gateway

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pinpay/internal/notify"
)

// PinGateway implements the uniform operation contract against the Pin
// Payments API (https://pin.net.au). Every operation is one synchronous
// round trip: build the request, send it, classify the reply, and — when
// the caller committed and the reply classified as a success — persist the
// resulting entities.
//
// Remote failures are normal results, never errors. Transport faults are
// returned as errors with no retry. A Store failure after a successful
// round trip also comes back as an error: the remote side effect has
// already happened, and compensation (idempotent re-persistence using the
// returned token) is the caller's responsibility.
type PinGateway struct {
	transport Transport
	store     Store
	notifier  notify.Notifier
	logger    *zap.Logger
}

// New builds a gateway from its collaborators. The transport must already
// be bound to the credentials resolved for the active mode.
func New(transport Transport, store Store, notifier notify.Notifier, logger *zap.Logger) *PinGateway {
	return &PinGateway{
		transport: transport,
		store:     store,
		notifier:  notifier,
		logger:    logger,
	}
}

// Purchase charges a full card via POST /charges. With commit and a
// classified success it persists the stored card and a charge referencing it.
func (g *PinGateway) Purchase(ctx context.Context, money decimal.Decimal, card CreditCard, opts Options, commit bool) (*Result, error) {
	body := chargeBase(money, opts)
	cardBody, err := cardPayload(card, opts)
	if err != nil {
		return nil, err
	}
	body["card"] = cardBody

	reply, err := g.transport.Request(ctx, http.MethodPost, "/charges", body)
	if err != nil {
		return nil, err
	}

	status, resp := g.classify("purchase", reply)
	result := &Result{Status: status, Response: resp}
	if !commit || status != StatusSuccess {
		return result, nil
	}

	stored := buildStoredCard(cardBody, card)
	if err := g.store.CreateCard(stored); err != nil {
		return nil, err
	}
	charge, err := buildCharge(resp)
	if err != nil {
		return nil, err
	}
	charge.CardID = &stored.ID
	charge.Card = stored
	if err := g.store.CreateCharge(charge); err != nil {
		return nil, err
	}

	result.Entity = charge
	return result, nil
}

// Authorize tokenizes a card via POST /cards. No charge is created; on a
// classified success the stored card, carrying the remote card token, is
// persisted and returned.
func (g *PinGateway) Authorize(ctx context.Context, money decimal.Decimal, card CreditCard, opts Options) (*Result, error) {
	// Tokenization carries no amount; money is part of the uniform contract.
	body, err := cardPayload(card, opts)
	if err != nil {
		return nil, err
	}

	reply, err := g.transport.Request(ctx, http.MethodPost, "/cards", body)
	if err != nil {
		return nil, err
	}

	status, resp := g.classify("authorize", reply)
	result := &Result{Status: status, Response: resp}
	if status != StatusSuccess {
		return result, nil
	}

	stored := buildStoredCard(body, card)
	stored.Token = stringField(resp, "token")
	if err := g.store.CreateCard(stored); err != nil {
		return nil, err
	}

	result.Entity = stored
	return result, nil
}

// Capture charges a previously stored card or customer token via
// POST /charges. The token kind decides which key it travels under; an
// unrecognized prefix sends neither. On a committed success only a charge
// is persisted — deliberately without a card link, unlike Purchase.
func (g *PinGateway) Capture(ctx context.Context, money decimal.Decimal, authorization string, opts Options, commit bool) (*Result, error) {
	body := chargeBase(money, opts)
	switch KindOfToken(authorization) {
	case TokenCustomer:
		body["customer_token"] = authorization
	case TokenCard:
		body["card_token"] = authorization
	}

	reply, err := g.transport.Request(ctx, http.MethodPost, "/charges", body)
	if err != nil {
		return nil, err
	}

	status, resp := g.classify("capture", reply)
	result := &Result{Status: status, Response: resp}
	if !commit || status != StatusSuccess {
		return result, nil
	}

	charge, err := buildCharge(resp)
	if err != nil {
		return nil, err
	}
	if err := g.store.CreateCharge(charge); err != nil {
		return nil, err
	}

	result.Entity = charge
	return result, nil
}

// Void is not supported by the Pin API.
func (g *PinGateway) Void(ctx context.Context, identification string, opts Options) (*Result, error) {
	return nil, ErrNotImplemented
}

// Credit refunds a charge via POST /{charge}/refunds with an empty body.
// On a committed success the refund record is persisted.
func (g *PinGateway) Credit(ctx context.Context, money decimal.Decimal, identification string, opts Options, commit bool) (*Result, error) {
	// Pin refunds the full charge; money is part of the uniform contract.
	reply, err := g.transport.Request(ctx, http.MethodPost, "/"+identification+"/refunds", map[string]interface{}{})
	if err != nil {
		return nil, err
	}

	status, resp := g.classify("credit", reply)
	result := &Result{Status: status, Response: resp}
	if !commit || status != StatusSuccess {
		return result, nil
	}

	refund, err := buildRefund(resp, identification)
	if err != nil {
		return nil, err
	}
	if err := g.store.CreateRefund(refund); err != nil {
		return nil, err
	}

	result.Entity = refund
	return result, nil
}

// Recurring is not supported by the Pin API.
func (g *PinGateway) Recurring(ctx context.Context, money decimal.Decimal, card CreditCard, opts Options) (*Result, error) {
	return nil, ErrNotImplemented
}

// StoreCard creates or updates a remote customer holding the card. With an
// options token the customer resource is updated via PUT, otherwise created
// via POST. On a committed success the card is persisted and the customer
// upserted by token.
func (g *PinGateway) StoreCard(ctx context.Context, card CreditCard, opts Options, commit bool) (*Result, error) {
	cardBody, err := cardPayload(card, opts)
	if err != nil {
		return nil, err
	}
	body := map[string]interface{}{
		"email": opts.Email,
		"card":  cardBody,
	}

	var reply map[string]interface{}
	if opts.Token != "" {
		reply, err = g.transport.Request(ctx, http.MethodPut, "/customers/"+opts.Token, body)
	} else {
		reply, err = g.transport.Request(ctx, http.MethodPost, "/customers", body)
	}
	if err != nil {
		return nil, err
	}

	status, resp := g.classify("store", reply)
	result := &Result{Status: status, Response: resp}
	if !commit || status != StatusSuccess {
		return result, nil
	}

	stored := buildStoredCard(cardBody, card)
	if err := g.store.CreateCard(stored); err != nil {
		return nil, err
	}
	customer := g.reconcileCustomer(resp, stored, opts.Token)
	if err := g.store.SaveCustomer(customer); err != nil {
		return nil, err
	}

	result.Entity = customer
	return result, nil
}

// Unstore is not supported by the Pin API.
func (g *PinGateway) Unstore(ctx context.Context, identification string, opts Options) (*Result, error) {
	return nil, ErrNotImplemented
}
