package graph

import (
	"context"
	"time"

	"github.com/d60-Lab/graphql-blog/internal/model"
	"github.com/d60-Lab/graphql-blog/internal/repository"
	"github.com/d60-Lab/graphql-blog/internal/service"
)

// Resolver GraphQL 根解析器，依赖全部显式注入
type Resolver struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	postService  service.PostService
}

func NewResolver(userRepo repository.UserRepository, postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository, postService service.PostService) *Resolver {
	return &Resolver{
		userRepo:     userRepo,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		postService:  postService,
	}
}

// SeeUser 带 email 精确查单个用户（未命中返回空列表），省略时返回全部
func (r *Resolver) SeeUser(ctx context.Context, args struct{ Email *string }) ([]*userResolver, error) {
	if args.Email == nil {
		users, err := r.userRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return r.wrapUsers(users), nil
	}
	user, err := r.userRepo.GetByEmail(ctx, *args.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []*userResolver{}, nil
	}
	return []*userResolver{{root: r, user: user}}, nil
}

// SeePost 按作者邮箱查帖子，作者不存在同样返回空列表
func (r *Resolver) SeePost(ctx context.Context, args struct{ Email string }) ([]*postResolver, error) {
	posts, err := r.postRepo.ListByAuthorEmail(ctx, args.Email)
	if err != nil {
		return nil, err
	}
	return r.wrapPosts(posts), nil
}

// SeeCategories 带 name 精确匹配（可能跨帖子多条），省略时返回全部
func (r *Resolver) SeeCategories(ctx context.Context, args struct{ Name *string }) ([]*categoryResolver, error) {
	var (
		categories []*model.Category
		err        error
	)
	if args.Name == nil {
		categories, err = r.categoryRepo.ListAll(ctx)
	} else {
		categories, err = r.categoryRepo.ListByName(ctx, *args.Name)
	}
	if err != nil {
		return nil, err
	}
	return r.wrapCategories(categories), nil
}

// CreatePost 创建帖子并挂标签，作者邮箱不存在时整体失败
func (r *Resolver) CreatePost(ctx context.Context, args struct {
	Email       string
	Title       string
	Description string
	Categories  *[]*string
}) (*postResolver, error) {
	var names []string
	if args.Categories != nil {
		for _, c := range *args.Categories {
			if c != nil {
				names = append(names, *c)
			}
		}
	}
	post, err := r.postService.CreatePost(ctx, args.Email, args.Title, args.Description, names)
	if err != nil {
		return nil, err
	}
	return &postResolver{root: r, post: post}, nil
}

func (r *Resolver) wrapUsers(users []*model.User) []*userResolver {
	res := make([]*userResolver, len(users))
	for i, u := range users {
		res[i] = &userResolver{root: r, user: u}
	}
	return res
}

func (r *Resolver) wrapPosts(posts []*model.Post) []*postResolver {
	res := make([]*postResolver, len(posts))
	for i, p := range posts {
		res[i] = &postResolver{root: r, post: p}
	}
	return res
}

func (r *Resolver) wrapCategories(categories []*model.Category) []*categoryResolver {
	res := make([]*categoryResolver, len(categories))
	for i, c := range categories {
		res[i] = &categoryResolver{root: r, category: c}
	}
	return res
}

// userResolver User 字段解析
type userResolver struct {
	root *Resolver
	user *model.User
}

func (u *userResolver) ID() int32 { return int32(u.user.ID) }
func (u *userResolver) Email() string { return u.user.Email }
func (u *userResolver) Name() *string { return u.user.Name }

// 列表类型为可空（[Post]），graphql-go 要求返回 *[]
func (u *userResolver) Posts(ctx context.Context) (*[]*postResolver, error) {
	posts, err := u.root.postRepo.ListByAuthorID(ctx, u.user.ID)
	if err != nil {
		return nil, err
	}
	res := u.root.wrapPosts(posts)
	return &res, nil
}

// postResolver Post 字段解析，关联字段按 id 惰性回查
type postResolver struct {
	root *Resolver
	post *model.Post
}

func (p *postResolver) ID() int32 { return int32(p.post.ID) }
func (p *postResolver) Title() string { return p.post.Title }
func (p *postResolver) Description() string { return p.post.Description }
func (p *postResolver) CreatedAt() string { return p.post.CreatedAt.Format(time.RFC3339) }
func (p *postResolver) UpdatedAt() string { return p.post.UpdatedAt.Format(time.RFC3339) }

func (p *postResolver) Author(ctx context.Context) (*userResolver, error) {
	user, err := p.root.userRepo.GetByID(ctx, p.post.AuthorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &userResolver{root: p.root, user: user}, nil
}

func (p *postResolver) Categories(ctx context.Context) ([]*categoryResolver, error) {
	categories, err := p.root.categoryRepo.ListByPostID(ctx, p.post.ID)
	if err != nil {
		return nil, err
	}
	return p.root.wrapCategories(categories), nil
}

// categoryResolver Category 字段解析
type categoryResolver struct {
	root     *Resolver
	category *model.Category
}

func (c *categoryResolver) ID() int32 { return int32(c.category.ID) }
func (c *categoryResolver) Name() string { return c.category.Name }

func (c *categoryResolver) Post(ctx context.Context) (*postResolver, error) {
	post, err := c.root.postRepo.GetByID(ctx, c.category.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return &postResolver{root: c.root, post: post}, nil
}
