package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) (sqlx.ExtContext, bool) {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx, true
		}
	}
	return db, false
}

// TodoReadRepository reads todos from PostgreSQL.
type TodoReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTodoReadRepository(db *sqlx.DB, txGetter TxGetter) *TodoReadRepository {
	return &TodoReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the todo with the given id, or nil when it does not exist.
func (r *TodoReadRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate is GetByID for a read-modify-write. Inside a transaction
// the row stays locked until the transaction ends.
func (r *TodoReadRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Todo, error) {
	return r.getByID(ctx, id, true)
}

func (r *TodoReadRepository) getByID(ctx context.Context, id string, lock bool) (*models.Todo, error) {
	query := `
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos
		WHERE id = $1
	`
	exec, inTx := executor(ctx, r.db, r.txGetter)
	if lock && inTx {
		query += ` FOR UPDATE`
	}

	var todo models.Todo
	err := sqlx.GetContext(ctx, exec, &todo, query, id)
	logQuery(query, []any{id}, todo, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// List returns every stored todo.
func (r *TodoReadRepository) List(ctx context.Context) ([]models.Todo, error) {
	const query = `
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos
	`
	exec, _ := executor(ctx, r.db, r.txGetter)

	todos := []models.Todo{}
	err := sqlx.SelectContext(ctx, exec, &todos, query)
	logQuery(query, nil, len(todos), err)

	if err != nil {
		return nil, err
	}
	return todos, nil
}

// TodoWriteRepository writes todos to PostgreSQL.
type TodoWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTodoWriteRepository(db *sqlx.DB, txGetter TxGetter) *TodoWriteRepository {
	return &TodoWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a new todo.
func (r *TodoWriteRepository) Insert(ctx context.Context, todo models.Todo) error {
	const query = `
		INSERT INTO todos (id, title, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{todo.ID, todo.Title, todo.Description, todo.Completed, todo.CreatedAt, todo.UpdatedAt}
	exec, _ := executor(ctx, r.db, r.txGetter)

	res, err := exec.ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)

	return err
}

// Update overwrites the mutable fields of an existing todo.
// It reports false when no todo with that id exists.
func (r *TodoWriteRepository) Update(ctx context.Context, todo models.Todo) (bool, error) {
	const query = `
		UPDATE todos
		SET title = $2, description = $3, completed = $4, updated_at = $5
		WHERE id = $1
	`
	args := []any{todo.ID, todo.Title, todo.Description, todo.Completed, todo.UpdatedAt}
	exec, _ := executor(ctx, r.db, r.txGetter)

	res, err := exec.ExecContext(ctx, query, args...)
	n := rowsAffected(res)
	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes a todo and returns it, or nil when it does not exist.
func (r *TodoWriteRepository) Delete(ctx context.Context, id string) (*models.Todo, error) {
	const query = `
		DELETE FROM todos
		WHERE id = $1
		RETURNING id, title, description, completed, created_at, updated_at
	`
	exec, _ := executor(ctx, r.db, r.txGetter)

	var todo models.Todo
	err := sqlx.GetContext(ctx, exec, &todo, query, id)
	logQuery(query, []any{id}, todo, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
