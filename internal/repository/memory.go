package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
)

// memory - process local key/value store. Values are kept encoded so callers
// never share state with the store, the same as with Redis.
type memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func newMemory() *memory {
	return &memory{values: make(map[string][]byte)}
}

func (that *memory) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", key, err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()
	that.values[key] = data

	return nil
}

func (that *memory) get(key string, value any) (bool, error) {
	that.mu.RLock()
	data, ok := that.values[key]
	that.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("could not unmarshal %s: %w", key, err)
	}

	return true, nil
}

// update - read-modify-write of the value at key under the write lock.
// found is false when the key is missing.
func update[T any](store *memory, key string, mutate func(value *T) (bool, error)) (value *T, found bool, err error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	data, ok := store.values[key]
	if !ok {
		return nil, false, nil
	}

	value = new(T)
	if err = json.Unmarshal(data, value); err != nil {
		return nil, true, fmt.Errorf("could not unmarshal %s: %w", key, err)
	}

	changed, err := mutate(value)
	if err != nil || !changed {
		return value, true, err
	}

	if data, err = json.Marshal(value); err != nil {
		return nil, true, fmt.Errorf("could not marshal %s: %w", key, err)
	}

	store.values[key] = data

	return value, true, nil
}

type memoryPlayer struct {
	store *memory
}

// NewMemoryPlayerRepository - player storage that lives as long as the process.
func NewMemoryPlayerRepository() PlayerRepository {
	return &memoryPlayer{store: newMemory()}
}

func (that *memoryPlayer) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	return that.store.set(playerKey(player.ID), player)
}

func (that *memoryPlayer) GetByID(_ context.Context, id string) (*entity.Player, error) {
	var player entity.Player

	found, err := that.store.get(playerKey(id), &player)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrPlayerNotFound
	}

	return &player, nil
}

func (that *memoryPlayer) Update(_ context.Context, id string, mutate func(player *entity.Player) (bool, error)) (*entity.Player, error) {
	player, found, err := update(that.store, playerKey(id), mutate)
	if !found && err == nil {
		return nil, ErrPlayerNotFound
	}

	return player, err
}

// Refresh - memory entries never expire.
func (that *memoryPlayer) Refresh(context.Context, string) error {
	return nil
}

type memoryRound struct {
	store *memory
}

// NewMemoryRoundRepository - round storage that lives as long as the process.
func NewMemoryRoundRepository() RoundRepository {
	return &memoryRound{store: newMemory()}
}

func (that *memoryRound) CreateOrUpdate(_ context.Context, round *entity.Round) error {
	return that.store.set(roundKey(round.ID), round)
}

func (that *memoryRound) GetByID(_ context.Context, id string) (*entity.Round, error) {
	var round entity.Round

	found, err := that.store.get(roundKey(id), &round)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrRoundNotFound
	}

	return &round, nil
}

func (that *memoryRound) Update(_ context.Context, id string, mutate func(round *entity.Round) (bool, error)) (*entity.Round, error) {
	round, found, err := update(that.store, roundKey(id), mutate)
	if !found && err == nil {
		return nil, ErrRoundNotFound
	}

	return round, err
}
