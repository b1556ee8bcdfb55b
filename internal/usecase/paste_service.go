package usecase

import (
	"context"

	"pastebin/internal/apperr"
	"pastebin/internal/domain"
)

type PasteService struct {
	Pastes PasteRepository
}

func NewPasteService(pastes PasteRepository) *PasteService {
	return &PasteService{Pastes: pastes}
}

func (s *PasteService) Create(ctx context.Context, paste domain.NewPaste) (domain.Paste, *apperr.Error) {
	return s.Pastes.Create(ctx, paste)
}

func (s *PasteService) Update(ctx context.Context, paste domain.Paste) (domain.Paste, *apperr.Error) {
	return s.Pastes.Update(ctx, paste)
}

func (s *PasteService) GetByID(ctx context.Context, id int) (domain.Paste, *apperr.Error) {
	return s.Pastes.GetByID(ctx, id)
}

func (s *PasteService) List(ctx context.Context) ([]domain.Paste, *apperr.Error) {
	return s.Pastes.List(ctx, listLimit)
}

func (s *PasteService) ListByUser(ctx context.Context, userID int) ([]domain.Paste, *apperr.Error) {
	return s.Pastes.ListByUser(ctx, userID, listLimit)
}

func (s *PasteService) Delete(ctx context.Context, id int) (int64, *apperr.Error) {
	return s.Pastes.Delete(ctx, id)
}
