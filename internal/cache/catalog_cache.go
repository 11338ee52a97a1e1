package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maturiq/internal/model"
)

// CatalogCache handles Redis caching for catalog reference data. The
// catalog is read on every answer submission, so lookups are cached with a
// TTL; misses fall through to the repository.
type CatalogCache interface {
	GetQuestion(ctx context.Context, questionID string) (*model.Question, error)
	SetQuestion(ctx context.Context, question *model.Question) error

	GetCategories(ctx context.Context) ([]*model.Category, error)
	SetCategories(ctx context.Context, categories []*model.Category) error

	Invalidate(ctx context.Context) error
}

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a new catalog cache
func NewCatalogCache(client *redis.Client) CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    1 * time.Hour,
	}
}

// Key helpers
func (c *catalogCache) questionKey(questionID string) string {
	return fmt.Sprintf("catalog:q:%s", questionID)
}

func (c *catalogCache) categoriesKey() string {
	return "catalog:categories"
}

func (c *catalogCache) GetQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	data, err := c.client.Get(ctx, c.questionKey(questionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var question model.Question
	if err := json.Unmarshal([]byte(data), &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *catalogCache) SetQuestion(ctx context.Context, question *model.Question) error {
	data, err := json.Marshal(question)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.questionKey(question.ID), data, c.ttl).Err()
}

func (c *catalogCache) GetCategories(ctx context.Context) ([]*model.Category, error) {
	data, err := c.client.Get(ctx, c.categoriesKey()).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var categories []*model.Category
	if err := json.Unmarshal([]byte(data), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *catalogCache) SetCategories(ctx context.Context, categories []*model.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.categoriesKey(), data, c.ttl).Err()
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "catalog:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
