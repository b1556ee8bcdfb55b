package postgres

import (
	"context"

	"gorm.io/gorm"

	"pastebin/internal/apperr"
	"pastebin/internal/domain"
)

type PasteRepo struct {
	db *gorm.DB
}

func NewPasteRepo(db *gorm.DB) *PasteRepo {
	return &PasteRepo{db: db}
}

func (r *PasteRepo) Create(ctx context.Context, paste domain.NewPaste) (domain.Paste, *apperr.Error) {
	model := PasteModel{UserID: paste.UserID, Data: paste.Data}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Paste{}, classify(err, "pastes", "fail to create paste")
	}
	return toPaste(model), nil
}

func (r *PasteRepo) Update(ctx context.Context, paste domain.Paste) (domain.Paste, *apperr.Error) {
	var model PasteModel
	if err := r.db.WithContext(ctx).First(&model, paste.ID).Error; err != nil {
		return domain.Paste{}, classify(err, "pastes", "fail to update paste")
	}
	model.Data = paste.Data
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return domain.Paste{}, classify(err, "pastes", "fail to update paste")
	}
	return toPaste(model), nil
}

func (r *PasteRepo) GetByID(ctx context.Context, id int) (domain.Paste, *apperr.Error) {
	var model PasteModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return domain.Paste{}, classify(err, "pastes", "fail to fetch paste")
	}
	return toPaste(model), nil
}

func (r *PasteRepo) List(ctx context.Context, limit int) ([]domain.Paste, *apperr.Error) {
	var models []PasteModel
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&models).Error; err != nil {
		return nil, classify(err, "pastes", "fail to list pastes")
	}
	return toPastes(models), nil
}

func (r *PasteRepo) ListByUser(ctx context.Context, userID, limit int) ([]domain.Paste, *apperr.Error) {
	var models []PasteModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, classify(err, "pastes", "fail to list pastes")
	}
	return toPastes(models), nil
}

func (r *PasteRepo) Delete(ctx context.Context, id int) (int64, *apperr.Error) {
	tx := r.db.WithContext(ctx).Delete(&PasteModel{}, id)
	if tx.Error != nil {
		return 0, classify(tx.Error, "pastes", "fail to delete paste")
	}
	return tx.RowsAffected, nil
}

func toPaste(model PasteModel) domain.Paste {
	return domain.Paste{ID: model.ID, UserID: model.UserID, Data: model.Data}
}

func toPastes(models []PasteModel) []domain.Paste {
	pastes := make([]domain.Paste, 0, len(models))
	for _, model := range models {
		pastes = append(pastes, toPaste(model))
	}
	return pastes
}
