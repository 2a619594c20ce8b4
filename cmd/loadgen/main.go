package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/d60-Lab/graphql-blog/config"
	"github.com/d60-Lab/graphql-blog/internal/model"
	"github.com/d60-Lab/graphql-blog/internal/repository"
	"github.com/d60-Lab/graphql-blog/internal/service"
	"github.com/d60-Lab/graphql-blog/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// 发帖 + 按作者读 feed 的延迟压测，针对 config 指定的数据库。
// 环境变量：N 发帖总数，CONC 并发度，CATS 每帖标签数
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postService := service.NewPostService(userRepo, postRepo, categoryRepo)

	ctx := context.Background()
	N := envInt("N", 10000)
	CONC := envInt("CONC", 4)
	CATS := envInt("CATS", 3)

	// seed authors
	const authors = 100
	emails := make([]string, authors)
	for i := 0; i < authors; i++ {
		emails[i] = fmt.Sprintf("author_%03d@example.com", i)
		if existing := must(userRepo.GetByEmail(ctx, emails[i])); existing == nil {
			if err := userRepo.Create(ctx, &model.User{Email: emails[i]}); err != nil {
				panic(err)
			}
		}
	}

	cats := make([]string, CATS)
	for i := range cats {
		cats[i] = fmt.Sprintf("tag%d", i)
	}

	writeLat := make([]time.Duration, N)
	var wg sync.WaitGroup
	sem := make(chan struct{}, CONC)
	start := time.Now()
	for i := 0; i < N; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			email := emails[i%authors]
			t0 := time.Now()
			_, err := postService.CreatePost(ctx, email, fmt.Sprintf("post %d", i), "load test body", cats)
			writeLat[i] = time.Since(t0)
			if err != nil {
				fmt.Fprintf(os.Stderr, "create post %d: %v\n", i, err)
			}
		}(i)
	}
	wg.Wait()
	wall := time.Since(start)

	readLat := make([]time.Duration, 0, N/10)
	for i := 0; i < N/10; i++ {
		t0 := time.Now()
		_, _ = postRepo.ListByAuthorEmail(ctx, emails[i%authors])
		readLat = append(readLat, time.Since(t0))
	}

	fmt.Printf("createPost: n=%d conc=%d cats=%d wall=%v qps=%.0f\n", N, CONC, CATS, wall, float64(N)/wall.Seconds())
	report("write", writeLat)
	report("read ", readLat)
}

func report(name string, lat []time.Duration) {
	if len(lat) == 0 {
		return
	}
	sorted := append([]time.Duration(nil), lat...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	pct := func(p float64) time.Duration { return sorted[int(float64(len(sorted)-1)*p)] }
	fmt.Printf("%s p50=%v p95=%v p99=%v max=%v\n", name, pct(0.50), pct(0.95), pct(0.99), sorted[len(sorted)-1])
}
