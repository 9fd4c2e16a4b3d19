package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// ActorRepository handles persistence for citizens, staff and the
// supervisor. Actors referenced by complaints are never deleted, only
// soft-deactivated via Update.
type ActorRepository interface {
	Create(ctx context.Context, actor *domain.Actor) error
	Update(ctx context.Context, actor *domain.Actor) error
	GetByID(ctx context.Context, id string) (*domain.Actor, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Actor, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Actor, error)
}

type actorRepository struct {
	pool *pgxpool.Pool
}

// NewActorRepository instantiates the repository.
func NewActorRepository(pool *pgxpool.Pool) ActorRepository {
	return &actorRepository{pool: pool}
}

func (r *actorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	const query = `
        INSERT INTO actors (full_name, phone_number, password_hash, role, category_scope, area, address, active_flag)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		actor.FullName,
		actor.PhoneNumber,
		actor.PasswordHash,
		actor.Role,
		scopeToStrings(actor.CategoryScope),
		actor.Area,
		actor.Address,
		actor.Active,
	).Scan(&actor.ID, &actor.CreatedAt, &actor.UpdatedAt)
}

func (r *actorRepository) Update(ctx context.Context, actor *domain.Actor) error {
	const query = `
        UPDATE actors
        SET full_name=$1, phone_number=$2, password_hash=$3, role=$4, category_scope=$5,
            area=$6, address=$7, active_flag=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		actor.FullName,
		actor.PhoneNumber,
		actor.PasswordHash,
		actor.Role,
		scopeToStrings(actor.CategoryScope),
		actor.Area,
		actor.Address,
		actor.Active,
		actor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *actorRepository) GetByID(ctx context.Context, id string) (*domain.Actor, error) {
	const query = `
        SELECT id, full_name, phone_number, password_hash, role, category_scope, area, address, active_flag, created_at, updated_at
        FROM actors WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *actorRepository) GetByPhone(ctx context.Context, phone string) (*domain.Actor, error) {
	const query = `
        SELECT id, full_name, phone_number, password_hash, role, category_scope, area, address, active_flag, created_at, updated_at
        FROM actors WHERE phone_number=$1`
	return r.fetchSingle(ctx, query, phone)
}

func (r *actorRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Actor, error) {
	var actor domain.Actor
	var scope []string
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&actor.ID,
		&actor.FullName,
		&actor.PhoneNumber,
		&actor.PasswordHash,
		&actor.Role,
		&scope,
		&actor.Area,
		&actor.Address,
		&actor.Active,
		&actor.CreatedAt,
		&actor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	actor.CategoryScope = stringsToScope(scope)
	return &actor, nil
}

func (r *actorRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.Actor, error) {
	const query = `
        SELECT id, full_name, phone_number, password_hash, role, category_scope, area, address, active_flag, created_at, updated_at
        FROM actors WHERE role=$1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Actor
	for rows.Next() {
		var actor domain.Actor
		var scope []string
		if err := rows.Scan(
			&actor.ID,
			&actor.FullName,
			&actor.PhoneNumber,
			&actor.PasswordHash,
			&actor.Role,
			&scope,
			&actor.Area,
			&actor.Address,
			&actor.Active,
			&actor.CreatedAt,
			&actor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		actor.CategoryScope = stringsToScope(scope)
		result = append(result, actor)
	}
	return result, rows.Err()
}

func scopeToStrings(scope []domain.Category) []string {
	out := make([]string, 0, len(scope))
	for _, c := range scope {
		out = append(out, string(c))
	}
	return out
}

func stringsToScope(values []string) []domain.Category {
	out := make([]domain.Category, 0, len(values))
	for _, v := range values {
		out = append(out, domain.Category(v))
	}
	return out
}
