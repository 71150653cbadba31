package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	query := `
		SELECT id, name, tax_id, job_title, department, admission_date, social_id,
			   role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	var role string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.TaxID,
		&u.JobTitle,
		&u.Department,
		&u.AdmissionDate,
		&u.SocialID,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	parsed, ok := user.ParseRole(role)
	if !ok {
		return user.User{}, fmt.Errorf("user %s has unknown role %q", u.ID, role)
	}
	u.Role = parsed

	return u, nil
}
