package ports

// PasswordHasher is a one-way, salted hash with constant-time verification.
type PasswordHasher interface {
	// Hash returns a salted one-way transform of plaintext. Two calls on
	// the same plaintext produce different outputs.
	Hash(plaintext string) (string, error)
	// Verify reports whether hashed was produced from plaintext. Malformed
	// hashed input yields false, never an error or panic.
	Verify(plaintext, hashed string) bool
}
