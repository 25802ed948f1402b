package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/zenithpay/travel-api/internal/domain"
)

type HotelRepo interface {
	Create(ctx context.Context, h dom.Hotel) (dom.Hotel, error)
	GetByID(ctx context.Context, id int64) (dom.Hotel, error)
	List(ctx context.Context) ([]dom.Hotel, error)
	ListByLocation(ctx context.Context, location string) ([]dom.Hotel, error)
	Update(ctx context.Context, id int64, h dom.Hotel) (dom.Hotel, error)
	Delete(ctx context.Context, id int64) error
}

type PGHotelRepo struct {
	db *pgxpool.Pool
}

func NewPGHotelRepo(db *pgxpool.Pool) *PGHotelRepo {
	return &PGHotelRepo{db: db}
}

func (r *PGHotelRepo) Create(ctx context.Context, h dom.Hotel) (dom.Hotel, error) {
	query := `
		INSERT INTO hotels (name, location, price, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, location, price, rating`
	var out dom.Hotel
	err := r.db.QueryRow(ctx, query, h.Name, h.Location, h.Price, h.Rating).Scan(
		&out.ID, &out.Name, &out.Location, &out.Price, &out.Rating,
	)
	return out, err
}

func (r *PGHotelRepo) GetByID(ctx context.Context, id int64) (dom.Hotel, error) {
	var h dom.Hotel
	err := r.db.QueryRow(ctx,
		`SELECT id, name, location, price, rating FROM hotels WHERE id = $1`,
		id,
	).Scan(&h.ID, &h.Name, &h.Location, &h.Price, &h.Rating)
	return h, err
}

func (r *PGHotelRepo) List(ctx context.Context) ([]dom.Hotel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, location, price, rating FROM hotels ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotels(rows)
}

func (r *PGHotelRepo) ListByLocation(ctx context.Context, location string) ([]dom.Hotel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, location, price, rating FROM hotels WHERE location ILIKE $1 ORDER BY id`,
		location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHotels(rows)
}

func (r *PGHotelRepo) Update(ctx context.Context, id int64, h dom.Hotel) (dom.Hotel, error) {
	query := `
		UPDATE hotels SET name = $2, location = $3, price = $4, rating = $5
		WHERE id = $1
		RETURNING id, name, location, price, rating`
	var out dom.Hotel
	err := r.db.QueryRow(ctx, query, id, h.Name, h.Location, h.Price, h.Rating).Scan(
		&out.ID, &out.Name, &out.Location, &out.Price, &out.Rating,
	)
	return out, err
}

func (r *PGHotelRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanHotels(rows pgx.Rows) ([]dom.Hotel, error) {
	var list []dom.Hotel
	for rows.Next() {
		var h dom.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &h.Price, &h.Rating); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
