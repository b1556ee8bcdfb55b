package auth

import "pastebin/internal/apperr"

// CheckPerm decides access for routes that allow either the resource owner
// or an administrator. Ownership on the ordinary capability is checked
// first; otherwise the admin resolution outcome is returned verbatim, so a
// missing or garbled token surfaces as its original 401 rather than being
// collapsed into "permission denied".
func CheckPerm(userID int, user User, userErr *apperr.Error, admin Admin, adminErr *apperr.Error) *apperr.Error {
	if userErr == nil && user.UserID == userID {
		return nil
	}
	return adminErr
}
