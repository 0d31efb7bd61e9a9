package asset

import "testing"

func TestTokenRejectsBadSymbol(t *testing.T) {
	cases := []string{"", "usdt", "TOO-LONG-SYMBOL-EXCEEDING-THIRTY-TWO-CHARS", "HAS SPACE"}
	for _, symbol := range cases {
		if _, err := Token(symbol); err == nil {
			t.Errorf("Token(%q): expected error, got none", symbol)
		}
	}
}

func TestTokenAcceptsValidSymbol(t *testing.T) {
	cases := []string{"A", "USDT", "USD:T-1_2"}
	for _, symbol := range cases {
		a, err := Token(symbol)
		if err != nil {
			t.Fatalf("Token(%q): unexpected error: %v", symbol, err)
		}
		if a.IsPLP() {
			t.Fatalf("Token(%q): IsPLP() = true", symbol)
		}
		if a.Symbol() != symbol {
			t.Fatalf("Token(%q).Symbol() = %q", symbol, a.Symbol())
		}
	}
}

func TestAssetOrdering(t *testing.T) {
	usdt, _ := Token("USDT")
	btc, _ := Token("BTC")
	plp := PLP()

	if !plp.Less(usdt) {
		t.Error("PLP should sort before any Token")
	}
	if plp.Less(plp) {
		t.Error("PLP should not sort before itself")
	}
	if !btc.Less(usdt) {
		t.Error("Token(BTC) should sort before Token(USDT) lexicographically")
	}
}

func TestAssetEquality(t *testing.T) {
	a1, _ := Token("USDT")
	a2, _ := Token("USDT")
	if !a1.Equal(a2) {
		t.Error("two tokens with the same symbol should be equal")
	}
	if a1.Equal(PLP()) {
		t.Error("a token should never equal PLP")
	}
}

func TestCanonicalEncoding(t *testing.T) {
	plpEnc := PLP().CanonicalEncoding()
	if len(plpEnc) != 1 || plpEnc[0] != 0 {
		t.Fatalf("PLP encoding = %v, want [0]", plpEnc)
	}

	usdt, _ := Token("USDT")
	enc := usdt.CanonicalEncoding()
	if enc[0] != 1 {
		t.Fatalf("Token tag byte = %d, want 1", enc[0])
	}
	if len(enc) != 1+4+len("USDT") {
		t.Fatalf("Token encoding length = %d, want %d", len(enc), 1+4+len("USDT"))
	}
}
