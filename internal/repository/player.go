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

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Update(ctx context.Context, id string, mutate func(player *entity.Player) (bool, error)) (*entity.Player, error)
	Refresh(ctx context.Context, id string) error
}

type dbPlayer struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPlayerRepository(client *redis.Client, ttl time.Duration) PlayerRepository {
	return &dbPlayer{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	err = that.client.Set(ctx, playerKey(player.ID), playerJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	response, err := that.client.Get(ctx, playerKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	var existingPlayer entity.Player
	if err = json.Unmarshal([]byte(response), &existingPlayer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &existingPlayer, nil
}

// Update - changes the stored player atomically, see watchAndUpdate.
func (that *dbPlayer) Update(ctx context.Context, id string, mutate func(player *entity.Player) (bool, error)) (*entity.Player, error) {
	return watchAndUpdate(ctx, that.client, playerKey(id), that.ttl, ErrPlayerNotFound, mutate)
}

// Refresh - pushes the player's expiry forward without rewriting it.
func (that *dbPlayer) Refresh(ctx context.Context, id string) error {
	if err := that.client.Expire(ctx, playerKey(id), that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to refresh player: %w", err)
	}

	return nil
}

func playerKey(id string) string {
	return "player:" + id
}
