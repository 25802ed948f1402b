package domain

import "time"

// Catalog entities are plain CRUD rows with no business rules beyond
// primary-key identity.

type Bus struct {
	ID       int64
	BusName  string
	Route    string
	BusType  string
	Capacity int
}

type Hotel struct {
	ID       int64
	Name     string
	Location string
	Price    float64
	Rating   float64
}

type Train struct {
	ID                 int64
	TrainName          string
	TrainNumber        string
	SourceStation      string
	DestinationStation string
	DepartureTime      string
	ArrivalTime        string
	TravelDate         time.Time
	Price              float64
	SeatsAvailable     int
}
