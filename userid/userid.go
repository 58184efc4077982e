package userid

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

// Sizes of the decoded identifier types, in bytes.
const (
	// UserIDSize is the length of a user ID: an ed25519 public key.
	UserIDSize = ed25519.PublicKeySize
	// SignatureSize is the length of a detached item signature.
	SignatureSize = ed25519.SignatureSize
	// PasswordSize is the length of a decoded password: a private key seed
	// followed by a 4-byte checksum.
	PasswordSize = seedSize + checksumSize

	seedSize     = ed25519.SeedSize
	checksumSize = 4
)

// UserID identifies a user: their ed25519 public key.
type UserID [UserIDSize]byte

// ParseUserID decodes and validates a base58 user ID.
//
// Rejections are categorized: empty input, malformed base58, decoded value
// too short, decoded length matching a password (likely a pasted secret),
// or decoded value too long.
func ParseUserID(s string) (UserID, error) {
	var id UserID
	if s == "" {
		return id, newParseError(CodeEmpty, "user ID is empty")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return id, &ParseError{Code: CodeInvalidEncoding, Message: "user ID is not valid base58", Cause: err}
	}
	switch {
	case len(raw) < UserIDSize:
		return id, newParseError(CodeTooShort, "user ID too short: decoded to %d bytes, expected %d", len(raw), UserIDSize)
	case len(raw) == UserIDSize:
		copy(id[:], raw)
		return id, nil
	case len(raw) == PasswordSize:
		return id, newParseError(CodePasswordLength, "this looks like a password, not a user ID. Never paste your password here")
	default:
		return id, newParseError(CodeTooLong, "user ID too long: decoded to %d bytes, expected %d", len(raw), UserIDSize)
	}
}

// String returns the base58 encoding of the user ID.
func (id UserID) String() string {
	return base58.Encode(id[:])
}

// Bytes returns a copy of the raw key bytes.
func (id UserID) Bytes() []byte {
	out := make([]byte, UserIDSize)
	copy(out, id[:])
	return out
}

// PublicKey returns the ID as an ed25519 public key.
func (id UserID) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(id.Bytes())
}
