package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, password_hash, email, role, reset_code, reset_code_expires, created_at, updated_at`

// uniqueViolation detecta un insert que chocó con un constraint UNIQUE (SQLSTATE 23505).
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role,
		&u.ResetCode, &u.ResetCodeExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Devuelve domain.ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Email, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, username))
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// List devuelve usuarios paginados, más recientes primero.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role,
			&u.ResetCode, &u.ResetCodeExpires, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateRole cambia el rol de un usuario.
func (r *UserRepo) UpdateRole(id, role string) error {
	query := `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// SetResetCode guarda código y vencimiento de recuperación. Sobreescribe cualquier
// código pendiente: gana el último solicitado.
func (r *UserRepo) SetResetCode(id, code string, expires time.Time) error {
	query := `UPDATE users SET reset_code = $2, reset_code_expires = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, code, expires)
	if err != nil {
		return fmt.Errorf("set reset code: %w", err)
	}
	return nil
}

// ConsumePasswordReset fija el nuevo hash y anula código+vencimiento en una sola
// sentencia, condicionada a que el código coincida y no esté vencido. Devuelve false
// si ninguna fila coincidió (código inválido o vencido).
func (r *UserRepo) ConsumePasswordReset(code, passwordHash string) (bool, error) {
	query := `
		UPDATE users
		SET password_hash = $2, reset_code = NULL, reset_code_expires = NULL, updated_at = now()
		WHERE reset_code = $1 AND reset_code_expires > now()`
	tag, err := r.q.Exec(context.Background(), query, code, passwordHash)
	if err != nil {
		return false, fmt.Errorf("consume password reset: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
