package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type TestRedis struct {
	Container testcontainers.Container
	Client    *redis.Client
	URL       string
}

func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	url, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get redis connection string: %v", err)
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("failed to parse redis url: %v", err)
	}

	return &TestRedis{
		Container: redisContainer,
		Client:    redis.NewClient(opts),
		URL:       url,
	}
}

func (tr *TestRedis) TeardownTestRedis(t *testing.T) {
	t.Helper()

	if err := tr.Client.Close(); err != nil {
		t.Logf("failed to close redis client: %v", err)
	}

	if err := tr.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (tr *TestRedis) Flush(t *testing.T) {
	t.Helper()

	if err := tr.Client.FlushAll(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}
