package usecase

import (
	"context"
	"net/http"

	"pastebin/internal/apperr"
	"pastebin/internal/auth"
	"pastebin/internal/digest"
)

// AuthService is the login boundary: username and password in, signed
// bearer token out. Unknown username and wrong password collapse into the
// same response so the endpoint cannot be used to enumerate accounts.
type AuthService struct {
	Users  UserRepository
	Digest *digest.Digester
	Codec  *auth.Codec
}

func NewAuthService(users UserRepository, dig *digest.Digester, codec *auth.Codec) *AuthService {
	return &AuthService{Users: users, Digest: dig, Codec: codec}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *apperr.Error) {
	user, err := s.Users.GetByName(ctx, username)
	if err != nil {
		if err.Code == http.StatusNotFound {
			return "", apperr.BadRequest("wrong username or password")
		}
		return "", err
	}
	if !s.Digest.Verify(user.Username, user.PasswordDigest, password) {
		return "", apperr.BadRequest("wrong username or password")
	}
	token, signErr := s.Codec.Encode(user.ID, user.Username, user.Admin)
	if signErr != nil {
		return "", apperr.InternalServerError("fail to generate jwt token")
	}
	return token, nil
}
