// Package notifier carries change signals between clients over Redis pub/sub.
// A mutation publishes its topic; subscribers re-query and rebuild their
// snapshot per signal. Delivery is at-most-once, which is enough here: a
// missed signal only delays the next snapshot until the following mutation.
package notifier

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"photovault/pkg/logger"
)

type Client struct {
	redis  *redis.Client
	prefix string
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	prefix := cfg.ChannelPrefix
	if prefix == "" {
		prefix = "photovault"
	}

	return &Client{
		redis:  rdb,
		prefix: prefix,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func (c *Client) channel(topic string) string {
	return c.prefix + ":" + topic
}

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg Config) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.Publish(ctx, p.client.channel(topic), "changed").Err()
}

type Subscriber struct {
	client *Client
}

func NewSubscriber(client *Client) *Subscriber {
	return &Subscriber{client: client}
}

func (s *Subscriber) Subscribe(ctx context.Context, topic string) (<-chan struct{}, error) {
	pubsub := s.client.redis.Subscribe(ctx, s.client.channel(topic))

	// Confirm the subscription before handing out the channel so callers
	// never miss a signal published right after Subscribe returns.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, err
	}

	out := make(chan struct{})
	go s.forward(ctx, pubsub, out)

	return out, nil
}

func (s *Subscriber) forward(ctx context.Context, pubsub *redis.PubSub, out chan struct{}) {
	defer close(out)
	defer func() {
		if err := pubsub.Close(); err != nil {
			logger.Error("failed to close pubsub", "err", err)
		}
	}()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-messages:
			if !ok {
				return
			}
			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}
}
