package domain

// PasswordHasher guards the stored credentials of students and admins.
// Hashes are opaque strings; only VerifyPassword can interpret them.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
