package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"pastebin/internal/apperr"
	"pastebin/internal/domain"
)

// fakeUserRepo mimics the storage layer's classification contract: absent
// rows are 404 "data not found", duplicate usernames and emails are 400
// "duplicate {field}".
type fakeUserRepo struct {
	nextID int
	users  map[int]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.NewUser) (domain.User, *apperr.Error) {
	if err := f.checkUnique(0, user.Username, user.Email); err != nil {
		return domain.User{}, err
	}
	f.nextID++
	created := domain.User{
		ID:             f.nextID,
		Username:       user.Username,
		Email:          user.Email,
		PasswordDigest: user.PasswordDigest,
	}
	f.users[created.ID] = created
	return created, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user domain.User) (domain.User, *apperr.Error) {
	if _, ok := f.users[user.ID]; !ok {
		return domain.User{}, apperr.NotFound("data not found")
	}
	if err := f.checkUnique(user.ID, user.Username, user.Email); err != nil {
		return domain.User{}, err
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (domain.User, *apperr.Error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, apperr.NotFound("data not found")
	}
	return user, nil
}

func (f *fakeUserRepo) GetByName(_ context.Context, username string) (domain.User, *apperr.Error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, apperr.NotFound("data not found")
}

func (f *fakeUserRepo) List(_ context.Context, limit int) ([]domain.User, *apperr.Error) {
	out := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) (int64, *apperr.Error) {
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func (f *fakeUserRepo) checkUnique(selfID int, username, email string) *apperr.Error {
	for id, user := range f.users {
		if id == selfID {
			continue
		}
		if user.Username == username {
			return apperr.BadRequest("duplicate username")
		}
		if strings.EqualFold(user.Email, email) {
			return apperr.BadRequest("duplicate email")
		}
	}
	return nil
}

func userFixture(id int) domain.User {
	return domain.User{
		ID:       id,
		Username: "user" + strconv.Itoa(id),
		Email:    "user" + strconv.Itoa(id) + "@example.com",
	}
}

type fakePasteRepo struct {
	nextID int
	pastes map[int]domain.Paste
}

func newFakePasteRepo() *fakePasteRepo {
	return &fakePasteRepo{pastes: make(map[int]domain.Paste)}
}

func (f *fakePasteRepo) Create(_ context.Context, paste domain.NewPaste) (domain.Paste, *apperr.Error) {
	f.nextID++
	created := domain.Paste{ID: f.nextID, UserID: paste.UserID, Data: paste.Data}
	f.pastes[created.ID] = created
	return created, nil
}

func (f *fakePasteRepo) Update(_ context.Context, paste domain.Paste) (domain.Paste, *apperr.Error) {
	stored, ok := f.pastes[paste.ID]
	if !ok {
		return domain.Paste{}, apperr.NotFound("data not found")
	}
	stored.Data = paste.Data
	f.pastes[paste.ID] = stored
	return stored, nil
}

func (f *fakePasteRepo) GetByID(_ context.Context, id int) (domain.Paste, *apperr.Error) {
	paste, ok := f.pastes[id]
	if !ok {
		return domain.Paste{}, apperr.NotFound("data not found")
	}
	return paste, nil
}

func (f *fakePasteRepo) List(_ context.Context, limit int) ([]domain.Paste, *apperr.Error) {
	out := make([]domain.Paste, 0, len(f.pastes))
	for _, paste := range f.pastes {
		out = append(out, paste)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePasteRepo) ListByUser(_ context.Context, userID, limit int) ([]domain.Paste, *apperr.Error) {
	out := make([]domain.Paste, 0)
	for _, paste := range f.pastes {
		if paste.UserID == userID {
			out = append(out, paste)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePasteRepo) Delete(_ context.Context, id int) (int64, *apperr.Error) {
	if _, ok := f.pastes[id]; !ok {
		return 0, nil
	}
	delete(f.pastes, id)
	return 1, nil
}
