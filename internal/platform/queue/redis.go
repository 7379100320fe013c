package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"judge_api/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// ConnectRedis opens a client and verifies it with PING.
func ConnectRedis(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

// RedisJudgeQueue pushes judge jobs as JSON onto a Redis list. Consumers pop
// from the opposite end (BRPOP) to get FIFO order.
type RedisJudgeQueue struct {
	rdb  *redis.Client
	name string
}

func NewRedisJudgeQueue(rdb *redis.Client, name string) *RedisJudgeQueue {
	return &RedisJudgeQueue{rdb: rdb, name: name}
}

func (q *RedisJudgeQueue) Enqueue(ctx context.Context, job model.JudgeJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal judge job %s: %w", job.ID, err)
	}
	if err := q.rdb.LPush(ctx, q.name, payload).Err(); err != nil {
		return fmt.Errorf("failed to push judge job %s to %s: %w", job.ID, q.name, err)
	}
	return nil
}

// Len reports how many jobs are waiting.
func (q *RedisJudgeQueue) Len(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, q.name).Result()
}
