package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/d60-Lab/graphql-blog/internal/model"
	"github.com/d60-Lab/graphql-blog/internal/repository"
	"github.com/d60-Lab/graphql-blog/pkg/logger"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// PostService 发帖服务
type PostService interface {
	// CreatePost 为指定邮箱的作者创建帖子并挂上标签。
	// 各写入独立提交、顺序执行，返回前全部落库；
	// 标签写入失败时帖子已提交，错误原样上抛（接受部分成功）。
	CreatePost(ctx context.Context, email, title, description string, categories []string) (*model.Post, error)
}

type postService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
}

func NewPostService(userRepo repository.UserRepository, postRepo repository.PostRepository, categoryRepo repository.CategoryRepository) PostService {
	return &postService{userRepo: userRepo, postRepo: postRepo, categoryRepo: categoryRepo}
}

func (s *postService) CreatePost(ctx context.Context, email, title, description string, categories []string) (*model.Post, error) {
	author, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{Title: title, Description: description, AuthorID: author.ID}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	for _, name := range categories {
		c := &model.Category{Name: name, PostID: post.ID}
		if err := s.categoryRepo.Create(ctx, c); err != nil {
			logger.Warn("category create failed after post committed",
				zap.Uint("post_id", post.ID), zap.String("category", name), zap.Error(err))
			return nil, fmt.Errorf("create category %q: %w", name, err)
		}
	}

	logger.Info("post created",
		zap.Uint("post_id", post.ID), zap.String("author", email), zap.Int("categories", len(categories)))
	return post, nil
}
