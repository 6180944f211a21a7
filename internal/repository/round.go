package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
)

var ErrRoundNotFound = errors.New("round not found")

type RoundRepository interface {
	CreateOrUpdate(ctx context.Context, round *entity.Round) error
	GetByID(ctx context.Context, id string) (*entity.Round, error)
	Update(ctx context.Context, id string, mutate func(round *entity.Round) (bool, error)) (*entity.Round, error)
}

type dbRound struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoundRepository(client *redis.Client, ttl time.Duration) RoundRepository {
	return &dbRound{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbRound) CreateOrUpdate(ctx context.Context, round *entity.Round) error {
	roundJSON, err := json.Marshal(round)
	if err != nil {
		return fmt.Errorf("could not marshal round: %w", err)
	}

	err = that.client.Set(ctx, roundKey(round.ID), roundJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set round: %w", err)
	}

	return nil
}

func (that *dbRound) GetByID(ctx context.Context, id string) (*entity.Round, error) {
	response, err := that.client.Get(ctx, roundKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrRoundNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get round by id: %w", err)
	}

	var existingRound entity.Round
	if err = json.Unmarshal([]byte(response), &existingRound); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &existingRound, nil
}

// Update - changes the stored round atomically, see watchAndUpdate.
func (that *dbRound) Update(ctx context.Context, id string, mutate func(round *entity.Round) (bool, error)) (*entity.Round, error) {
	return watchAndUpdate(ctx, that.client, roundKey(id), that.ttl, ErrRoundNotFound, mutate)
}

func roundKey(id string) string {
	return "round:" + id
}
