package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/d60-Lab/graphql-blog/config"
	"github.com/d60-Lab/graphql-blog/internal/model"
	"github.com/d60-Lab/graphql-blog/internal/repository"
	"github.com/d60-Lab/graphql-blog/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// 用户不走 API 创建，用本工具预置：
//   go run ./cmd/seed alice@example.com:Alice bob@example.com
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: seed email[:name] ...")
		os.Exit(1)
	}

	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	userRepo := repository.NewUserRepository(db)
	ctx := context.Background()

	for _, arg := range os.Args[1:] {
		email, name, hasName := strings.Cut(arg, ":")
		u := &model.User{Email: email}
		if hasName {
			u.Name = &name
		}
		if existing := must(userRepo.GetByEmail(ctx, email)); existing != nil {
			fmt.Printf("skip %s (exists, id=%d)\n", email, existing.ID)
			continue
		}
		if err := userRepo.Create(ctx, u); err != nil {
			panic(err)
		}
		fmt.Printf("created %s (id=%d)\n", email, u.ID)
	}
}
