package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/graphql-blog/internal/model"
)

// UserRepository 用户仓储接口（用户由种子工具预置，API 不暴露创建）
type UserRepository interface {
	// GetByEmail 按邮箱精确查询，不存在返回 (nil, nil)
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID 按 ID 查询，不存在返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*model.User, error)

	// ListAll 返回全部用户
	ListAll(ctx context.Context) ([]*model.User, error)

	// Create 创建用户（种子/测试用）
	Create(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).Find(&users).Error
	return users, err
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
