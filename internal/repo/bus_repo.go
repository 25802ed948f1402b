package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/zenithpay/travel-api/internal/domain"
)

// BusRepo is plain pass-through CRUD; no rules beyond primary-key identity.
type BusRepo interface {
	Create(ctx context.Context, b dom.Bus) (dom.Bus, error)
	GetByID(ctx context.Context, id int64) (dom.Bus, error)
	List(ctx context.Context) ([]dom.Bus, error)
	Update(ctx context.Context, id int64, b dom.Bus) (dom.Bus, error)
	Delete(ctx context.Context, id int64) error
}

type PGBusRepo struct {
	db *pgxpool.Pool
}

func NewPGBusRepo(db *pgxpool.Pool) *PGBusRepo {
	return &PGBusRepo{db: db}
}

func (r *PGBusRepo) Create(ctx context.Context, b dom.Bus) (dom.Bus, error) {
	query := `
		INSERT INTO buses (bus_name, route, bus_type, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, bus_name, route, bus_type, capacity`
	var out dom.Bus
	err := r.db.QueryRow(ctx, query, b.BusName, b.Route, b.BusType, b.Capacity).Scan(
		&out.ID, &out.BusName, &out.Route, &out.BusType, &out.Capacity,
	)
	return out, err
}

func (r *PGBusRepo) GetByID(ctx context.Context, id int64) (dom.Bus, error) {
	var b dom.Bus
	err := r.db.QueryRow(ctx,
		`SELECT id, bus_name, route, bus_type, capacity FROM buses WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.BusName, &b.Route, &b.BusType, &b.Capacity)
	return b, err
}

func (r *PGBusRepo) List(ctx context.Context) ([]dom.Bus, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, bus_name, route, bus_type, capacity FROM buses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Bus
	for rows.Next() {
		var b dom.Bus
		if err := rows.Scan(&b.ID, &b.BusName, &b.Route, &b.BusType, &b.Capacity); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *PGBusRepo) Update(ctx context.Context, id int64, b dom.Bus) (dom.Bus, error) {
	query := `
		UPDATE buses SET bus_name = $2, route = $3, bus_type = $4, capacity = $5
		WHERE id = $1
		RETURNING id, bus_name, route, bus_type, capacity`
	var out dom.Bus
	err := r.db.QueryRow(ctx, query, id, b.BusName, b.Route, b.BusType, b.Capacity).Scan(
		&out.ID, &out.BusName, &out.Route, &out.BusType, &out.Capacity,
	)
	return out, err
}

func (r *PGBusRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM buses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
