// Package service declares the ports the use cases need from infrastructure.
package service

// PasswordHasher turns a plaintext password into the stored credential hash.
// Users are created with a password but the service never authenticates them,
// so only hashing is required.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
