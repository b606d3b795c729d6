package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository against the identity mirror.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByID fetches a user by its UUID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, role, created_at, updated_at FROM users WHERE id = $1`

	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// PromoteToSeller flips the user's role inside the registration transaction.
// Admins keep their role; promotion only applies to buyers.
func (r *UserRepo) PromoteToSeller(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2 AND role = $3`

	tag, err := tx.Exec(ctx, query, domain.RoleSeller, id, domain.RoleBuyer)
	if err != nil {
		return fmt.Errorf("promote user to seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Already a seller or an admin; nothing to change.
		return nil
	}
	return nil
}
