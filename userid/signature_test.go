package userid

import "testing"

func TestParseSignature_Categories(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ErrorCode
	}{
		{"empty", "", CodeEmpty},
		{"invalid encoding", "not-base58!", CodeInvalidEncoding},
		{"too short", encodeBytes(t, SignatureSize-2, 0x07), CodeTooShort},
		{"too long", encodeBytes(t, SignatureSize+2, 0x07), CodeTooLong},
	}
	for _, tc := range cases {
		_, err := ParseSignature(tc.in)
		if CodeOf(err) != tc.want {
			t.Errorf("%s: got code %q, want %q (err: %v)", tc.name, CodeOf(err), tc.want, err)
		}
	}
}

func TestSignature_RoundTripAndVerify(t *testing.T) {
	pw, err := GeneratePassword()
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("an item to publish")
	sig := pw.Sign(msg)

	parsed, err := ParseSignature(sig.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != sig {
		t.Fatal("signature did not round trip through base58")
	}

	if !parsed.Verify(pw.UserID(), msg) {
		t.Error("signature should verify for the signing user")
	}
	if parsed.Verify(pw.UserID(), []byte("a different item")) {
		t.Error("signature should not verify for different content")
	}

	other, err := GeneratePassword()
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Verify(other.UserID(), msg) {
		t.Error("signature should not verify for a different user")
	}
}
