package dto

import "time"

type BusRequest struct {
	BusName  string `json:"bus_name" binding:"required,max=120"`
	Route    string `json:"route" binding:"required,max=255"`
	BusType  string `json:"bus_type" binding:"max=60"`
	Capacity int    `json:"capacity" binding:"gte=0"`
}

type BusResponse struct {
	ID       int64  `json:"id"`
	BusName  string `json:"bus_name"`
	Route    string `json:"route"`
	BusType  string `json:"bus_type"`
	Capacity int    `json:"capacity"`
}

type HotelRequest struct {
	Name     string  `json:"name" binding:"required,max=120"`
	Location string  `json:"location" binding:"required,max=120"`
	Price    float64 `json:"price" binding:"gte=0"`
	Rating   float64 `json:"rating" binding:"gte=0,lte=5"`
}

type HotelResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

type TrainRequest struct {
	TrainName          string  `json:"train_name" binding:"required,max=120"`
	TrainNumber        string  `json:"train_number" binding:"required,max=20"`
	SourceStation      string  `json:"source_station" binding:"required,max=120"`
	DestinationStation string  `json:"destination_station" binding:"required,max=120"`
	DepartureTime      string  `json:"departure_time" binding:"max=8"`
	ArrivalTime        string  `json:"arrival_time" binding:"max=8"`
	TravelDate         string  `json:"travel_date" binding:"required"` // YYYY-MM-DD
	Price              float64 `json:"price" binding:"gte=0"`
	SeatsAvailable     int     `json:"seats_available" binding:"gte=0"`
}

type TrainResponse struct {
	ID                 int64     `json:"id"`
	TrainName          string    `json:"train_name"`
	TrainNumber        string    `json:"train_number"`
	SourceStation      string    `json:"source_station"`
	DestinationStation string    `json:"destination_station"`
	DepartureTime      string    `json:"departure_time"`
	ArrivalTime        string    `json:"arrival_time"`
	TravelDate         time.Time `json:"travel_date"`
	Price              float64   `json:"price"`
	SeatsAvailable     int       `json:"seats_available"`
}
