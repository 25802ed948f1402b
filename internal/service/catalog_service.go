package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	dom "github.com/zenithpay/travel-api/internal/domain"
	"github.com/zenithpay/travel-api/internal/repo"
)

// Catalog services are thin pass-throughs over their repos; the only
// translation is pgx.ErrNoRows -> ErrNotFound.

type BusService struct {
	repo repo.BusRepo
}

func NewBusService(r repo.BusRepo) *BusService {
	return &BusService{repo: r}
}

func (s *BusService) Create(ctx context.Context, b dom.Bus) (dom.Bus, error) {
	return s.repo.Create(ctx, b)
}

func (s *BusService) GetByID(ctx context.Context, id int64) (dom.Bus, error) {
	b, err := s.repo.GetByID(ctx, id)
	return b, mapNoRows(err)
}

func (s *BusService) List(ctx context.Context) ([]dom.Bus, error) {
	return s.repo.List(ctx)
}

func (s *BusService) Update(ctx context.Context, id int64, b dom.Bus) (dom.Bus, error) {
	out, err := s.repo.Update(ctx, id, b)
	return out, mapNoRows(err)
}

func (s *BusService) Delete(ctx context.Context, id int64) error {
	return mapNoRows(s.repo.Delete(ctx, id))
}

type HotelService struct {
	repo repo.HotelRepo
}

func NewHotelService(r repo.HotelRepo) *HotelService {
	return &HotelService{repo: r}
}

func (s *HotelService) Create(ctx context.Context, h dom.Hotel) (dom.Hotel, error) {
	return s.repo.Create(ctx, h)
}

func (s *HotelService) GetByID(ctx context.Context, id int64) (dom.Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	return h, mapNoRows(err)
}

// List returns all hotels, or only those in the given location when it
// is non-empty.
func (s *HotelService) List(ctx context.Context, location string) ([]dom.Hotel, error) {
	if location != "" {
		return s.repo.ListByLocation(ctx, location)
	}
	return s.repo.List(ctx)
}

func (s *HotelService) Update(ctx context.Context, id int64, h dom.Hotel) (dom.Hotel, error) {
	out, err := s.repo.Update(ctx, id, h)
	return out, mapNoRows(err)
}

func (s *HotelService) Delete(ctx context.Context, id int64) error {
	return mapNoRows(s.repo.Delete(ctx, id))
}

type TrainService struct {
	repo repo.TrainRepo
}

func NewTrainService(r repo.TrainRepo) *TrainService {
	return &TrainService{repo: r}
}

func (s *TrainService) Create(ctx context.Context, t dom.Train) (dom.Train, error) {
	return s.repo.Create(ctx, t)
}

func (s *TrainService) GetByID(ctx context.Context, id int64) (dom.Train, error) {
	t, err := s.repo.GetByID(ctx, id)
	return t, mapNoRows(err)
}

func (s *TrainService) List(ctx context.Context) ([]dom.Train, error) {
	return s.repo.List(ctx)
}

func (s *TrainService) Update(ctx context.Context, id int64, t dom.Train) (dom.Train, error) {
	out, err := s.repo.Update(ctx, id, t)
	return out, mapNoRows(err)
}

func (s *TrainService) Delete(ctx context.Context, id int64) error {
	return mapNoRows(s.repo.Delete(ctx, id))
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
