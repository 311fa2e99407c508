package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/user"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	query, args, err := qb.InsertModel("users", userInsertModelFrom(u), "RETURNING *")
	if err != nil {
		return user.User{}, fmt.Errorf("build create user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return user.User{}, fmt.Errorf("%w: %s", user.ErrEmailTaken, u.Email)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return userFromRow(row), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("email", email)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by email query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by email: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) List(ctx context.Context, f user.Filter) ([]user.User, error) {
	conds := make([]qb.Condition, 0, 3)
	if f.Role != "" {
		conds = append(conds, qb.Eq("role", string(f.Role)))
	}
	if f.Plan != "" {
		conds = append(conds, qb.Eq("plan", string(f.Plan)))
	}
	if f.Active != nil {
		conds = append(conds, qb.Eq("is_active", *f.Active))
	}

	query, args, err := qb.Select("*").From("users").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}

	return out, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, p user.Patch) (user.User, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("users")
	if p.Email != nil {
		b.Set("email", *p.Email)
	}
	if p.Role != nil {
		b.Set("role", string(*p.Role))
	}
	if p.Plan != nil {
		b.Set("plan", string(*p.Plan))
	}
	if p.IsActive != nil {
		b.Set("is_active", *p.IsActive)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build update user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		if isUniqueViolation(err) {
			return user.User{}, false, fmt.Errorf("%w", user.ErrEmailTaken)
		}
		return user.User{}, false, fmt.Errorf("update user: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("users").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}
