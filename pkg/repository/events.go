package repository

import (
	"context"
	"encoding/json"

	"github.com/DefiantLabs/cosmos-tokenfactory/pkg/model"
	"github.com/redis/go-redis/v9"
)

const (
	eventsChannel      = "pub/tokenfactory"
	maxEventsCacheSize = 50
	eventsKey          = "c/latest_tokenfactory_events"
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, event *model.RegistryEvent) error
}

// EventsCache publishes events and serves back the most recent ones, newest first.
type EventsCache interface {
	EventPublisher
	GetEvents(ctx context.Context, start, stop int64) ([]*model.RegistryEvent, error)
}

type Events struct {
	rdb *redis.Client
}

var _ EventsCache = (*Events)(nil)

func NewEvents(rdb *redis.Client) *Events {
	return &Events{
		rdb: rdb,
	}
}

// PublishEvent sends the event on the pub/sub channel and keeps it in the list of latest events.
func (s *Events) PublishEvent(ctx context.Context, event *model.RegistryEvent) error {
	res, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.rdb.Publish(ctx, eventsChannel, res).Err(); err != nil {
		return err
	}

	if err := s.rdb.LPush(ctx, eventsKey, string(res)).Err(); err != nil {
		return err
	}

	if err := s.rdb.LTrim(ctx, eventsKey, 0, maxEventsCacheSize-1).Err(); err != nil {
		return err
	}

	return nil
}

func (s *Events) GetEvents(ctx context.Context, start, stop int64) ([]*model.RegistryEvent, error) {
	if stop >= maxEventsCacheSize {
		stop = maxEventsCacheSize - 1
	}

	res, err := s.rdb.LRange(ctx, eventsKey, start, stop).Result()
	if err != nil {
		return nil, err
	}

	events := make([]*model.RegistryEvent, 0, len(res))
	for _, r := range res {
		var ev model.RegistryEvent
		if err := json.Unmarshal([]byte(r), &ev); err != nil {
			return nil, err
		}
		events = append(events, &ev)
	}

	return events, nil
}

// NopPublisher drops every event. Used when redis is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, *model.RegistryEvent) error {
	return nil
}
