package usecase

import (
	"context"

	"pastebin/internal/apperr"
	"pastebin/internal/domain"
)

// Repositories return already-classified errors: the storage layer maps its
// native failures (absent row, unique violation, anything else) where it
// detects them, and nothing above re-wraps.

type UserRepository interface {
	Create(ctx context.Context, user domain.NewUser) (domain.User, *apperr.Error)
	Update(ctx context.Context, user domain.User) (domain.User, *apperr.Error)
	GetByID(ctx context.Context, id int) (domain.User, *apperr.Error)
	GetByName(ctx context.Context, username string) (domain.User, *apperr.Error)
	List(ctx context.Context, limit int) ([]domain.User, *apperr.Error)
	Delete(ctx context.Context, id int) (int64, *apperr.Error)
}

type PasteRepository interface {
	Create(ctx context.Context, paste domain.NewPaste) (domain.Paste, *apperr.Error)
	Update(ctx context.Context, paste domain.Paste) (domain.Paste, *apperr.Error)
	GetByID(ctx context.Context, id int) (domain.Paste, *apperr.Error)
	List(ctx context.Context, limit int) ([]domain.Paste, *apperr.Error)
	ListByUser(ctx context.Context, userID, limit int) ([]domain.Paste, *apperr.Error)
	Delete(ctx context.Context, id int) (int64, *apperr.Error)
}
