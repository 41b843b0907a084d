package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
)

// ErrDuplicateTodoID is returned by Insert when the id is already stored.
var ErrDuplicateTodoID = errors.New("todo id already exists")

// replaceIfExists overwrites a hash field only when it is already present.
var replaceIfExists = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
	redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// takeField removes a hash field and returns its previous value.
var takeField = redis.NewScript(`
local v = redis.call("HGET", KEYS[1], ARGV[1])
if v then
	redis.call("HDEL", KEYS[1], ARGV[1])
end
return v
`)

// TodoKVRepository stores todos as JSON values in a single Redis hash keyed by id.
// Each operation is one Redis command or script, so it executes atomically.
type TodoKVRepository struct {
	client *redis.Client
	key    string
}

// NewTodoKVRepository creates a repository backed by the hash named key.
func NewTodoKVRepository(client *redis.Client, key string) *TodoKVRepository {
	return &TodoKVRepository{client: client, key: key}
}

// GetByID returns the todo with the given id, or nil when it does not exist.
func (r *TodoKVRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	val, err := r.client.HGet(ctx, r.key, id).Result()
	logger.Log.Infow("redis HGET", "key", r.key, "field", id, "error", err)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeTodo(val)
}

// GetByIDForUpdate is GetByID. Writes go through Lua scripts that re-check
// the field, so no read lock is taken.
func (r *TodoKVRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Todo, error) {
	return r.GetByID(ctx, id)
}

// List returns every stored todo in hash iteration order.
func (r *TodoKVRepository) List(ctx context.Context) ([]models.Todo, error) {
	vals, err := r.client.HVals(ctx, r.key).Result()
	logger.Log.Infow("redis HVALS", "key", r.key, "result", len(vals), "error", err)
	if err != nil {
		return nil, err
	}

	todos := make([]models.Todo, 0, len(vals))
	for _, val := range vals {
		todo, err := decodeTodo(val)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	return todos, nil
}

// Insert stores a new todo. It never overwrites an existing id.
func (r *TodoKVRepository) Insert(ctx context.Context, todo models.Todo) error {
	data, err := json.Marshal(todo)
	if err != nil {
		return err
	}

	ok, err := r.client.HSetNX(ctx, r.key, todo.ID, data).Result()
	logger.Log.Infow("redis HSETNX", "key", r.key, "field", todo.ID, "result", ok, "error", err)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTodoID, todo.ID)
	}
	return nil
}

// Update replaces a stored todo. It reports false when the id is not stored.
func (r *TodoKVRepository) Update(ctx context.Context, todo models.Todo) (bool, error) {
	data, err := json.Marshal(todo)
	if err != nil {
		return false, err
	}

	n, err := replaceIfExists.Run(ctx, r.client, []string{r.key}, todo.ID, data).Int()
	logger.Log.Infow("redis replace if exists", "key", r.key, "field", todo.ID, "result", n, "error", err)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete removes a todo and returns it, or nil when it does not exist.
func (r *TodoKVRepository) Delete(ctx context.Context, id string) (*models.Todo, error) {
	val, err := takeField.Run(ctx, r.client, []string{r.key}, id).Text()
	logger.Log.Infow("redis take field", "key", r.key, "field", id, "error", err)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeTodo(val)
}

// PingContext checks the connection to Redis.
func (r *TodoKVRepository) PingContext(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decodeTodo(val string) (*models.Todo, error) {
	var todo models.Todo
	if err := json.Unmarshal([]byte(val), &todo); err != nil {
		return nil, fmt.Errorf("decode todo: %w", err)
	}
	return &todo, nil
}
