package gateway

import "testing"

func TestKindOfToken(t *testing.T) {
	cases := []struct {
		token string
		want  TokenKind
	}{
		{"cus_XZg1ULpWaROQCOT5PdwLkQ", TokenCustomer},
		{"card_nytGw7koRg23EEp9NTmz9w", TokenCard},
		{"ch_lfUYEBK14zotCTykezJkfg", TokenUnknown},
		{"tok_whatever", TokenUnknown},
		{"", TokenUnknown},
	}
	for _, c := range cases {
		if got := KindOfToken(c.token); got != c.want {
			t.Fatalf("KindOfToken(%q) got %v want %v", c.token, got, c.want)
		}
	}
}
