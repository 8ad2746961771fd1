package config

import (
	"errors"
	"testing"
)

func TestPinConfigResolveLive(t *testing.T) {
	cfg := PinConfig{
		LiveSecret:   "sk_live",
		LiveEndpoint: "api.pin.net.au",
		TestSecret:   "sk_test",
		TestEndpoint: "test-api.pin.net.au",
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if resolved.SecretKey != "sk_live" || resolved.Endpoint != "api.pin.net.au" {
		t.Fatalf("resolved %+v", resolved)
	}
}

func TestPinConfigResolveTestMode(t *testing.T) {
	cfg := PinConfig{
		TestMode:     true,
		LiveSecret:   "sk_live",
		LiveEndpoint: "api.pin.net.au",
		TestSecret:   "sk_test",
		TestEndpoint: "test-api.pin.net.au",
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if resolved.SecretKey != "sk_test" || resolved.Endpoint != "test-api.pin.net.au" {
		t.Fatalf("resolved %+v", resolved)
	}
}

func TestPinConfigResolveMissingSecret(t *testing.T) {
	cfg := PinConfig{
		TestMode:     true,
		TestEndpoint: "test-api.pin.net.au",
	}

	_, err := cfg.Resolve()
	var gwErr *GatewayConfigError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected GatewayConfigError, got %v", err)
	}
	if gwErr.Mode != "TEST" {
		t.Fatalf("mode got %s want TEST", gwErr.Mode)
	}
}

func TestPinConfigResolveMissingEndpoint(t *testing.T) {
	cfg := PinConfig{LiveSecret: "sk_live"}

	_, err := cfg.Resolve()
	var gwErr *GatewayConfigError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected GatewayConfigError, got %v", err)
	}
	if gwErr.Mode != "LIVE" {
		t.Fatalf("mode got %s want LIVE", gwErr.Mode)
	}
}
