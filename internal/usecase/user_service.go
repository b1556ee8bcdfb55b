package usecase

import (
	"context"
	"strings"

	"pastebin/internal/apperr"
	"pastebin/internal/digest"
	"pastebin/internal/domain"
)

// listLimit caps unpaged listings.
const listLimit = 20

type UserService struct {
	Users  UserRepository
	Digest *digest.Digester
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

func NewUserService(users UserRepository, dig *digest.Digester) *UserService {
	return &UserService{Users: users, Digest: dig}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (domain.User, *apperr.Error) {
	return s.Users.Create(ctx, domain.NewUser{
		Username:       in.Username,
		Email:          strings.ToLower(in.Email),
		PasswordDigest: s.Digest.Password(in.Username, in.Password),
	})
}

// Update applies a partial update on top of the stored row. The username
// participates in the digest salt, so a username change must be submitted
// together with the password to keep the stored credential verifiable.
func (s *UserService) Update(ctx context.Context, id int, in UpdateUserInput) (domain.User, *apperr.Error) {
	user, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = strings.ToLower(*in.Email)
	}
	if in.Password != nil {
		user.PasswordDigest = s.Digest.Password(user.Username, *in.Password)
	}
	return s.Users.Update(ctx, user)
}

func (s *UserService) GetByID(ctx context.Context, id int) (domain.User, *apperr.Error) {
	return s.Users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, *apperr.Error) {
	return s.Users.List(ctx, listLimit)
}

func (s *UserService) Delete(ctx context.Context, id int) (int64, *apperr.Error) {
	return s.Users.Delete(ctx, id)
}
