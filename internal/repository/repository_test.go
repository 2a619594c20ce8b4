package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/graphql-blog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Category{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "alice@example.com")

	t.Run("hit", func(t *testing.T) {
		u, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		require.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		u, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.Nil(t, u)
	})
}

func TestUserRepository_ListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "a@example.com")
	seedUser(t, db, "b@example.com")

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestPostRepository_ListByAuthorEmail(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	seedUser(t, db, "bob@example.com")

	require.NoError(t, postRepo.Create(ctx, &model.Post{Title: "t1", Description: "d1", AuthorID: alice.ID}))
	require.NoError(t, postRepo.Create(ctx, &model.Post{Title: "t2", Description: "d2", AuthorID: alice.ID}))

	t.Run("author with posts", func(t *testing.T) {
		posts, err := postRepo.ListByAuthorEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Len(t, posts, 2)
	})

	t.Run("author without posts", func(t *testing.T) {
		posts, err := postRepo.ListByAuthorEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Empty(t, posts)
	})

	t.Run("unknown author yields empty, not error", func(t *testing.T) {
		posts, err := postRepo.ListByAuthorEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		require.Empty(t, posts)
	})
}

func TestPostRepository_TimestampsAssigned(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	p := &model.Post{Title: "t", Description: "d", AuthorID: alice.ID}
	require.NoError(t, postRepo.Create(ctx, p))

	require.NotZero(t, p.ID)
	require.False(t, p.CreatedAt.IsZero())
	require.False(t, p.UpdatedAt.IsZero())
}

func TestCategoryRepository_NameNotUnique(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	p1 := &model.Post{Title: "t1", Description: "d", AuthorID: alice.ID}
	p2 := &model.Post{Title: "t2", Description: "d", AuthorID: alice.ID}
	require.NoError(t, postRepo.Create(ctx, p1))
	require.NoError(t, postRepo.Create(ctx, p2))

	// 同名标签挂在不同帖子上
	require.NoError(t, categoryRepo.Create(ctx, &model.Category{Name: "go", PostID: p1.ID}))
	require.NoError(t, categoryRepo.Create(ctx, &model.Category{Name: "go", PostID: p2.ID}))
	require.NoError(t, categoryRepo.Create(ctx, &model.Category{Name: "db", PostID: p1.ID}))

	t.Run("ListByName", func(t *testing.T) {
		cats, err := categoryRepo.ListByName(ctx, "go")
		require.NoError(t, err)
		require.Len(t, cats, 2)
	})

	t.Run("ListByName miss", func(t *testing.T) {
		cats, err := categoryRepo.ListByName(ctx, "rust")
		require.NoError(t, err)
		require.Empty(t, cats)
	})

	t.Run("ListByPostID", func(t *testing.T) {
		cats, err := categoryRepo.ListByPostID(ctx, p1.ID)
		require.NoError(t, err)
		require.Len(t, cats, 2)
	})

	t.Run("ListAll", func(t *testing.T) {
		cats, err := categoryRepo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, cats, 3)
	})

	t.Run("GetByID miss returns nil", func(t *testing.T) {
		c, err := categoryRepo.GetByID(ctx, 9999)
		require.NoError(t, err)
		require.Nil(t, c)
	})
}
