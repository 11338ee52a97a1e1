package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maturiq/internal/model"
)

// ProgressCache handles Redis state for in-flight assessment progress
type ProgressCache interface {
	GetProgress(ctx context.Context, assessmentID string) (*model.AssessmentProgress, error)
	SetProgress(ctx context.Context, progress *model.AssessmentProgress) error
	ClearProgress(ctx context.Context, assessmentID string) error
}

type progressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache creates a new progress cache
func NewProgressCache(client *redis.Client) ProgressCache {
	return &progressCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *progressCache) progressKey(assessmentID string) string {
	return fmt.Sprintf("assessment:%s:progress", assessmentID)
}

func (c *progressCache) GetProgress(ctx context.Context, assessmentID string) (*model.AssessmentProgress, error) {
	data, err := c.client.Get(ctx, c.progressKey(assessmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var progress model.AssessmentProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *progressCache) SetProgress(ctx context.Context, progress *model.AssessmentProgress) error {
	progress.UpdatedAt = time.Now()
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.progressKey(progress.AssessmentID), data, c.ttl).Err()
}

func (c *progressCache) ClearProgress(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, c.progressKey(assessmentID)).Err()
}
