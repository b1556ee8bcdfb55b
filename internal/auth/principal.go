package auth

// User is the ordinary capability: a request authenticated as a specific
// account. It satisfies ownership checks against its own UserID and nothing
// else.
type User struct {
	UserID   int
	Username string
}

// Admin is the administrator capability. It is a distinct type rather than a
// flag on User so a handler requiring an Admin cannot be handed an ordinary
// principal by accident; the compiler enforces the distinction.
type Admin struct {
	UserID   int
	Username string
}
