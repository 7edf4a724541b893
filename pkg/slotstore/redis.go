package slotstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisChangeChannel = "slotstore:changed:"

// RedisConfig mirrors the env-tagged shape used elsewhere in this module.
type RedisConfig struct {
	URL          string
	ReadTimeout  int
	WriteTimeout int
	DialTimeout  int
}

// Redis stores slots as plain redis string keys and broadcasts change events
// over a pub/sub channel per slot, so every connected process hears about
// writes.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(cfg.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client, prefix: "slot:"}, nil
}

func (r *Redis) Close() error { return r.client.Close() }

func (r *Redis) Get(ctx context.Context, slot string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.prefix+slot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Redis) Set(ctx context.Context, slot string, data []byte) error {
	if err := r.client.Set(ctx, r.prefix+slot, data, 0).Err(); err != nil {
		return err
	}
	return r.client.Publish(ctx, redisChangeChannel+slot, slot).Err()
}

func (r *Redis) Delete(ctx context.Context, slot string) error {
	if err := r.client.Del(ctx, r.prefix+slot).Err(); err != nil {
		return err
	}
	return r.client.Publish(ctx, redisChangeChannel+slot, slot).Err()
}

func (r *Redis) Subscribe(slot string) (<-chan Event, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := r.client.Subscribe(ctx, redisChangeChannel+slot)

	out := make(chan Event, 8)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			select {
			case out <- Event{Slot: msg.Payload}:
			default:
			}
		}
	}()

	return out, func() {
		sub.Close()
		cancel()
	}
}
