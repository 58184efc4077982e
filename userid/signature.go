package userid

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// Signature is a detached ed25519 signature over an item's bytes. Items are
// addressed by (user ID, signature), so signatures travel base58-encoded in
// URLs just like user IDs.
type Signature [SignatureSize]byte

// ParseSignature decodes and validates a base58 signature.
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	if s == "" {
		return sig, newParseError(CodeEmpty, "signature is empty")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return sig, &ParseError{Code: CodeInvalidEncoding, Message: "signature is not valid base58", Cause: err}
	}
	switch {
	case len(raw) < SignatureSize:
		return sig, newParseError(CodeTooShort, "signature too short: decoded to %d bytes, expected %d", len(raw), SignatureSize)
	case len(raw) > SignatureSize:
		return sig, newParseError(CodeTooLong, "signature too long: decoded to %d bytes, expected %d", len(raw), SignatureSize)
	}
	copy(sig[:], raw)
	return sig, nil
}

// String returns the base58 encoding of the signature.
func (sig Signature) String() string {
	return base58.Encode(sig[:])
}

// Verify reports whether sig is a valid signature by user over msg.
func (sig Signature) Verify(user UserID, msg []byte) bool {
	return ed25519.Verify(user.PublicKey(), msg, sig[:])
}
