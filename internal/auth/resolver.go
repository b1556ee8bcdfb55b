package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"pastebin/internal/apperr"
)

// Resolver turns the raw Authorization header of a request into a typed
// principal, classifying every failure mode distinctly: absent header,
// undecodable token, expired token, and (for admin resolution) a valid
// token lacking the admin claim.
type Resolver struct {
	codec *Codec
}

func NewResolver(codec *Codec) *Resolver {
	return &Resolver{codec: codec}
}

// ResolveUser authenticates the ordinary capability.
func (r *Resolver) ResolveUser(header string) (User, *apperr.Error) {
	claims, err := r.claims(header)
	if err != nil {
		return User{}, err
	}
	return User{UserID: claims.UserID, Username: claims.Username}, nil
}

// ResolveAdmin authenticates the administrator capability. A structurally
// valid, unexpired token without the admin claim fails with 403; header and
// token failures keep their 401 classification.
func (r *Resolver) ResolveAdmin(header string) (Admin, *apperr.Error) {
	claims, err := r.claims(header)
	if err != nil {
		return Admin{}, err
	}
	if !claims.Admin {
		return Admin{}, apperr.Forbidden("permission denied")
	}
	return Admin{UserID: claims.UserID, Username: claims.Username}, nil
}

func (r *Resolver) claims(header string) (*Claims, *apperr.Error) {
	if header == "" {
		return nil, apperr.Unauthorized("token not found")
	}
	claims, err := r.codec.Decode(bearerToken(header))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.Unauthorized("expired token")
		}
		return nil, apperr.Unauthorized("invalid token")
	}
	return claims, nil
}

// bearerToken strips the scheme prefix. A header carrying some other scheme
// passes through unchanged and fails decoding like any other garbage; only
// a fully absent header means no token was presented.
func bearerToken(header string) string {
	return strings.TrimPrefix(header, "Bearer ")
}
