package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
)

type TestDockerRedisConfig struct {
	DockerResourceName string
	Client             *redis.Client
	Addr               string
	Clean              func()
}

func SetupTestRedis() (*TestDockerRedisConfig, error) {
	pool, err := NewPool()
	if err != nil {
		return nil, err
	}

	resourceName := fmt.Sprintf("redis-%s", randResourceNameSuffix(10))
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       resourceName,
		Repository: "redis",
		Tag:        "7-alpine",
	})
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%s", resource.GetBoundIP("6379/tcp"), resource.GetPort("6379/tcp"))
	var client *redis.Client
	if err := pool.Retry(func() error {
		client = redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return err
		}
		return nil
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	clean := func() {
		_ = client.Close()
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}

	return &TestDockerRedisConfig{
		DockerResourceName: resourceName,
		Client:             client,
		Addr:               addr,
		Clean:              clean,
	}, nil
}
