// Package userid parses and validates the platform's base58 identifiers:
// user IDs (ed25519 public keys), detached item signatures, and passwords
// (private key seeds with a checksum).
//
// Parse failures carry a machine-readable ErrorCode so callers can branch
// on the category — in particular CodePasswordLength, which flags the
// common mistake of pasting a password where a user ID belongs.
package userid
