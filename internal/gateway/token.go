package gateway

import "strings"

// TokenKind discriminates the opaque tokens the Pin API hands out. Only the
// string prefix carries meaning; anything else is TokenUnknown and charges
// built from it carry neither token key.
type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenCustomer
	TokenCard
)

// KindOfToken parses a token's prefix into its kind.
func KindOfToken(token string) TokenKind {
	switch {
	case strings.HasPrefix(token, "cus_"):
		return TokenCustomer
	case strings.HasPrefix(token, "card_"):
		return TokenCard
	default:
		return TokenUnknown
	}
}
