package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "usersadmin/internal/errors"
	"usersadmin/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByUserName(ctx context.Context, userName string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// Update writes every column of an existing user, including empty ones.
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", user.UserID).
		Select("user_name", "first_name", "last_name", "email", "user_status", "department").
		Updates(user)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(ctx, user.UserID); err != nil {
			return err
		}
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("user_id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// translate maps GORM errors onto user sentinels. Duplicate keys only come
// back as gorm.ErrDuplicatedKey when the DB is opened with TranslateError.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrUserAlreadyExists
	default:
		return err
	}
}
