// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes, verifies and vets user passwords.
type PasswordService interface {
	// HashPassword returns a one-way hash of the plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether the plain text password matches the hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks the password against the minimum
	// length and character rules enforced at registration and reset.
	ValidatePasswordStrength(password string) error
}
