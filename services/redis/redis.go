package redis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/gpng/quip-bot/models"
)

// New redis pool, shared by the quip store and the job queue
func New(url string, password string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     5,
		MaxActive:   20,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url, redis.DialPassword(password))
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// QuipStore keeps quips in a single hash of id -> text
type QuipStore struct {
	pool *redis.Pool
	key  string
}

// NewQuipStore under <namespace>:<table>
func NewQuipStore(pool *redis.Pool, namespace string, table string) *QuipStore {
	return &QuipStore{pool: pool, key: namespace + ":" + table}
}

func (s *QuipStore) conn(ctx context.Context) (redis.Conn, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("redis connection: %w", err)
	}
	return conn, nil
}

// Put stores quip, overwriting any quip with the same id
func (s *QuipStore) Put(ctx context.Context, quip models.Quip) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Do("HSET", s.key, quip.ID, quip.Text); err != nil {
		return fmt.Errorf("put quip %s: %w", quip.ID, err)
	}
	return nil
}

// Scan returns every quip ordered by id
func (s *QuipStore) Scan(ctx context.Context) ([]models.Quip, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	values, err := redis.StringMap(conn.Do("HGETALL", s.key))
	if err != nil {
		return nil, fmt.Errorf("scan quips: %w", err)
	}

	quips := make([]models.Quip, 0, len(values))
	for id, text := range values {
		quips = append(quips, models.Quip{ID: id, Text: text})
	}
	sort.Slice(quips, func(i, j int) bool { return quips[i].ID < quips[j].ID })

	return quips, nil
}

// Delete removes the quip with id, missing ids are fine
func (s *QuipStore) Delete(ctx context.Context, id string) error {
	conn, err := s.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.Do("HDEL", s.key, id); err != nil {
		return fmt.Errorf("delete quip %s: %w", id, err)
	}
	return nil
}
