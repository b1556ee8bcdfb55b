package domain

// User is a stored account. PasswordDigest never leaves the service layer;
// HTTP responses are built from dedicated DTOs.
type User struct {
	ID             int
	Username       string
	Email          string
	Admin          bool
	PasswordDigest []byte
}

// NewUser carries an already-digested credential into storage.
type NewUser struct {
	Username       string
	Email          string
	PasswordDigest []byte
}
