//go:build integration

// Package testutil starts throwaway MongoDB and Redis containers for integration tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const (
	mongoImage = "mongo:7.0"
	redisImage = "redis:7-alpine"
)

// Container is a running test container and its connection string.
type Container struct {
	Container testcontainers.Container
	URI       string
}

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer = Container

// RedisContainer wraps a Redis testcontainer.
type RedisContainer = Container

// SetupMongoDB starts a MongoDB container. Prefer GetSharedMongoDB with
// TestMain when a package has several integration tests.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	c, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}
	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get MongoDB connection string: %w", err)
	}
	return &Container{Container: c, URI: uri}, nil
}

// SetupRedis starts a Redis container; URI is a redis:// URL for redis.ParseURL.
func SetupRedis(ctx context.Context) (*RedisContainer, error) {
	c, err := tcredis.Run(ctx, redisImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start Redis container: %w", err)
	}
	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get Redis connection string: %w", err)
	}
	return &Container{Container: c, URI: uri}, nil
}

// Cleanup terminates the container.
func (c *Container) Cleanup(ctx context.Context) error {
	if c.Container == nil {
		return nil
	}
	if err := c.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}
