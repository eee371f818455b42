package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// SavedModel is one persisted analysis model: the full snapshot
// (fasteners, load cases, capacity parameters) as a JSON payload.
type SavedModel struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (int64, error)

	SaveModel(ctx context.Context, userID int, name string, payload json.RawMessage) (int, error)
	ListModels(ctx context.Context, userID int) ([]SavedModel, error)
	GetModel(ctx context.Context, userID, id int) (SavedModel, error)
	DeleteModel(ctx context.Context, userID, id int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, description string) (int64, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	res, err := r.db.ExecContext(ctx, query, id, login, description)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresUserRepository) SaveModel(ctx context.Context, userID int, name string, payload json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO models (user_id, name, payload) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, []byte(payload)).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListModels(ctx context.Context, userID int) ([]SavedModel, error) {
	query := "SELECT id, name, payload, created_at FROM models WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedModel
	for rows.Next() {
		var m SavedModel
		var payload []byte
		if err := rows.Scan(&m.ID, &m.Name, &payload, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Payload = payload
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresUserRepository) GetModel(ctx context.Context, userID, id int) (SavedModel, error) {
	var m SavedModel
	var payload []byte
	query := "SELECT id, name, payload, created_at FROM models WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&m.ID, &m.Name, &payload, &m.CreatedAt)
	m.Payload = payload
	return m, err
}

func (r *PostgresUserRepository) DeleteModel(ctx context.Context, userID, id int) error {
	query := "DELETE FROM models WHERE id=$1 AND user_id=$2"
	_, err := r.db.ExecContext(ctx, query, id, userID)
	return err
}
