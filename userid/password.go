package userid

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// Password holds a user's private key seed. Its base58 form is what users
// store in their password managers; the trailing checksum catches typos
// before any signing happens.
type Password struct {
	seed [seedSize]byte
}

// GeneratePassword creates a new random password.
func GeneratePassword() (Password, error) {
	var p Password
	if _, err := rand.Read(p.seed[:]); err != nil {
		return p, err
	}
	return p, nil
}

// ParsePassword decodes and validates a base58 password.
func ParsePassword(s string) (Password, error) {
	var p Password
	if s == "" {
		return p, newParseError(CodeEmpty, "password is empty")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return p, &ParseError{Code: CodeInvalidEncoding, Message: "password is not valid base58", Cause: err}
	}
	switch {
	case len(raw) < PasswordSize:
		return p, newParseError(CodeTooShort, "password too short: decoded to %d bytes, expected %d", len(raw), PasswordSize)
	case len(raw) > PasswordSize:
		return p, newParseError(CodeTooLong, "password too long: decoded to %d bytes, expected %d", len(raw), PasswordSize)
	}
	seed := raw[:seedSize]
	if !checksumMatches(seed, raw[seedSize:]) {
		return p, newParseError(CodeBadChecksum, "password checksum mismatch: check for typos")
	}
	copy(p.seed[:], seed)
	return p, nil
}

// String returns the base58 encoding of the password: seed plus checksum.
func (p Password) String() string {
	out := make([]byte, 0, PasswordSize)
	out = append(out, p.seed[:]...)
	out = append(out, checksum(p.seed[:])...)
	return base58.Encode(out)
}

// UserID derives the public user ID for this password.
func (p Password) UserID() UserID {
	var id UserID
	key := ed25519.NewKeyFromSeed(p.seed[:])
	copy(id[:], key.Public().(ed25519.PublicKey))
	return id
}

// Sign signs msg with the password's private key.
func (p Password) Sign(msg []byte) Signature {
	var sig Signature
	key := ed25519.NewKeyFromSeed(p.seed[:])
	copy(sig[:], ed25519.Sign(key, msg))
	return sig
}

func checksum(seed []byte) []byte {
	sum := sha256.Sum256(seed)
	return sum[:checksumSize]
}

func checksumMatches(seed, got []byte) bool {
	want := checksum(seed)
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
