package notifyRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"file-catalog/internal/model/catalogInfo"

	"github.com/redis/go-redis/v9"
)

const (
	listKey    = "catalog:notifications"
	channel    = "catalog:updates"
	defaultMax = 100
)

// NotifyRepo keeps a bounded history of update notifications and fans each
// one out on a pub/sub channel.
type NotifyRepo struct {
	Client *redis.Client
	max    int64
}

func New(client *redis.Client, maxEntries int64) *NotifyRepo {
	if maxEntries <= 0 {
		maxEntries = defaultMax
	}
	return &NotifyRepo{Client: client, max: maxEntries}
}

func (r *NotifyRepo) Channel() string {
	return channel
}

func (r *NotifyRepo) Publish(ctx context.Context, n catalogInfo.UpdateNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	_, err = r.Client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, listKey, payload)
		p.LTrim(ctx, listKey, 0, r.max-1)
		p.Publish(ctx, channel, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Recent returns up to limit notifications, newest first.
func (r *NotifyRepo) Recent(ctx context.Context, limit int64) ([]catalogInfo.UpdateNotification, error) {
	if limit <= 0 || limit > r.max {
		limit = r.max
	}
	raw, err := r.Client.LRange(ctx, listKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]catalogInfo.UpdateNotification, 0, len(raw))
	for _, s := range raw {
		var n catalogInfo.UpdateNotification
		if err := json.Unmarshal([]byte(s), &n); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Listen delivers published notifications to fn until ctx is done.
// Payloads that fail to decode are skipped.
func (r *NotifyRepo) Listen(ctx context.Context, fn func(catalogInfo.UpdateNotification)) error {
	sub := r.Client.Subscribe(ctx, channel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}
	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			var n catalogInfo.UpdateNotification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				continue
			}
			fn(n)
		}
	}
}
