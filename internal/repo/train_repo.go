package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "github.com/zenithpay/travel-api/internal/domain"
)

type TrainRepo interface {
	Create(ctx context.Context, t dom.Train) (dom.Train, error)
	GetByID(ctx context.Context, id int64) (dom.Train, error)
	List(ctx context.Context) ([]dom.Train, error)
	Update(ctx context.Context, id int64, t dom.Train) (dom.Train, error)
	Delete(ctx context.Context, id int64) error
}

type PGTrainRepo struct {
	db *pgxpool.Pool
}

func NewPGTrainRepo(db *pgxpool.Pool) *PGTrainRepo {
	return &PGTrainRepo{db: db}
}

const trainColumns = `id, train_name, train_number, source_station, destination_station,
	departure_time, arrival_time, travel_date, price, seats_available`

func (r *PGTrainRepo) Create(ctx context.Context, t dom.Train) (dom.Train, error) {
	query := `
		INSERT INTO trains (train_name, train_number, source_station, destination_station,
			departure_time, arrival_time, travel_date, price, seats_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + trainColumns
	var out dom.Train
	err := r.db.QueryRow(ctx, query,
		t.TrainName, t.TrainNumber, t.SourceStation, t.DestinationStation,
		t.DepartureTime, t.ArrivalTime, t.TravelDate, t.Price, t.SeatsAvailable,
	).Scan(
		&out.ID, &out.TrainName, &out.TrainNumber, &out.SourceStation, &out.DestinationStation,
		&out.DepartureTime, &out.ArrivalTime, &out.TravelDate, &out.Price, &out.SeatsAvailable,
	)
	return out, err
}

func (r *PGTrainRepo) GetByID(ctx context.Context, id int64) (dom.Train, error) {
	var t dom.Train
	err := r.db.QueryRow(ctx,
		`SELECT `+trainColumns+` FROM trains WHERE id = $1`, id,
	).Scan(
		&t.ID, &t.TrainName, &t.TrainNumber, &t.SourceStation, &t.DestinationStation,
		&t.DepartureTime, &t.ArrivalTime, &t.TravelDate, &t.Price, &t.SeatsAvailable,
	)
	return t, err
}

func (r *PGTrainRepo) List(ctx context.Context) ([]dom.Train, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+trainColumns+` FROM trains ORDER BY travel_date, departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Train
	for rows.Next() {
		var t dom.Train
		if err := rows.Scan(
			&t.ID, &t.TrainName, &t.TrainNumber, &t.SourceStation, &t.DestinationStation,
			&t.DepartureTime, &t.ArrivalTime, &t.TravelDate, &t.Price, &t.SeatsAvailable,
		); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTrainRepo) Update(ctx context.Context, id int64, t dom.Train) (dom.Train, error) {
	query := `
		UPDATE trains SET train_name = $2, train_number = $3, source_station = $4,
			destination_station = $5, departure_time = $6, arrival_time = $7,
			travel_date = $8, price = $9, seats_available = $10
		WHERE id = $1
		RETURNING ` + trainColumns
	var out dom.Train
	err := r.db.QueryRow(ctx, query, id,
		t.TrainName, t.TrainNumber, t.SourceStation, t.DestinationStation,
		t.DepartureTime, t.ArrivalTime, t.TravelDate, t.Price, t.SeatsAvailable,
	).Scan(
		&out.ID, &out.TrainName, &out.TrainNumber, &out.SourceStation, &out.DestinationStation,
		&out.DepartureTime, &out.ArrivalTime, &out.TravelDate, &out.Price, &out.SeatsAvailable,
	)
	return out, err
}

func (r *PGTrainRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trains WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
