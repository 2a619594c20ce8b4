package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/graphql-blog/internal/model"
)

// PostRepository 帖子仓储接口
type PostRepository interface {
	// Create 创建帖子（ID、时间戳由数据库填充）
	Create(ctx context.Context, post *model.Post) error

	// GetByID 按 ID 查询，不存在返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*model.Post, error)

	// ListByAuthorID 查询某作者的全部帖子
	ListByAuthorID(ctx context.Context, authorID uint) ([]*model.Post, error)

	// ListByAuthorEmail 按作者邮箱查询帖子，作者不存在返回空
	ListByAuthorEmail(ctx context.Context, email string) ([]*model.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListByAuthorID(ctx context.Context, authorID uint) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthorEmail(ctx context.Context, email string) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("users.email = ?", email).
		Find(&posts).Error
	return posts, err
}
