package postgres

import (
	"context"

	"gorm.io/gorm"

	"pastebin/internal/apperr"
	"pastebin/internal/domain"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user domain.NewUser) (domain.User, *apperr.Error) {
	model := UserModel{
		Username:       user.Username,
		Email:          user.Email,
		PasswordDigest: user.PasswordDigest,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.User{}, classify(err, "users", "fail to create user")
	}
	return toUser(model), nil
}

func (r *UserRepo) Update(ctx context.Context, user domain.User) (domain.User, *apperr.Error) {
	model := UserModel{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		PasswordDigest: user.PasswordDigest,
		Admin:          user.Admin,
	}
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return domain.User{}, classify(err, "users", "fail to update user")
	}
	return toUser(model), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int) (domain.User, *apperr.Error) {
	var model UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return domain.User{}, classify(err, "users", "fail to fetch user")
	}
	return toUser(model), nil
}

func (r *UserRepo) GetByName(ctx context.Context, username string) (domain.User, *apperr.Error) {
	var model UserModel
	if err := r.db.WithContext(ctx).First(&model, "username = ?", username).Error; err != nil {
		return domain.User{}, classify(err, "users", "fail to fetch user")
	}
	return toUser(model), nil
}

func (r *UserRepo) List(ctx context.Context, limit int) ([]domain.User, *apperr.Error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&models).Error; err != nil {
		return nil, classify(err, "users", "fail to list users")
	}
	users := make([]domain.User, 0, len(models))
	for _, model := range models {
		users = append(users, toUser(model))
	}
	return users, nil
}

func (r *UserRepo) Delete(ctx context.Context, id int) (int64, *apperr.Error) {
	tx := r.db.WithContext(ctx).Delete(&UserModel{}, id)
	if tx.Error != nil {
		return 0, classify(tx.Error, "users", "fail to delete user")
	}
	return tx.RowsAffected, nil
}

func toUser(model UserModel) domain.User {
	return domain.User{
		ID:             model.ID,
		Username:       model.Username,
		Email:          model.Email,
		Admin:          model.Admin,
		PasswordDigest: model.PasswordDigest,
	}
}
