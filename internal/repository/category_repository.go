package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/graphql-blog/internal/model"
)

// CategoryRepository 标签仓储接口，标签只随帖子创建
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error

	// GetByID 按 ID 查询，不存在返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*model.Category, error)

	// ListByPostID 查询某帖子挂的全部标签
	ListByPostID(ctx context.Context, postID uint) ([]*model.Category, error)

	// ListByName 按名称精确查询（name 不唯一，可能跨帖子多条）
	ListByName(ctx context.Context, name string) ([]*model.Category, error)

	ListAll(ctx context.Context) ([]*model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepository{db: db} }

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListByPostID(ctx context.Context, postID uint) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) ListByName(ctx context.Context, name string) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}
