package trip

import (
	"time"

	"bikeshare/domain/entities"
)

// TripData struct that contains one row of a city bikeshare dataset
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins, empty if unknown
// + EndStation: name of the station in which the trip ends, empty if unknown
// + UserType: Subscriber, Customer, ...
// + Gender: only present in cities with demographic data
// + BirthYear: only present in cities with demographic data
// + Month, DayOfWeek, Hour, StartEndStation: derived from the fields above, see NewTripData
type TripData struct {
	StartTime       time.Time
	EndTime         time.Time
	Duration        entities.Optional[float64]
	StartStation    string
	EndStation      string
	UserType        entities.Optional[string]
	Gender          entities.Optional[string]
	BirthYear       entities.Optional[float64]
	Month           int
	DayOfWeek       string
	Hour            int
	StartEndStation string
}

// NewTripData returns a TripData with the derived fields already computed
func NewTripData(
	startTime time.Time,
	endTime time.Time,
	duration entities.Optional[float64],
	startStation string,
	endStation string,
	userType entities.Optional[string],
	gender entities.Optional[string],
	birthYear entities.Optional[float64],
) *TripData {
	return &TripData{
		StartTime:       startTime,
		EndTime:         endTime,
		Duration:        duration,
		StartStation:    startStation,
		EndStation:      endStation,
		UserType:        userType,
		Gender:          gender,
		BirthYear:       birthYear,
		Month:           int(startTime.Month()),
		DayOfWeek:       startTime.Weekday().String(),
		Hour:            startTime.Hour(),
		StartEndStation: CombineStations(startStation, endStation),
	}
}

// CombineStations returns the label used to count trips between two stations.
// The label is empty when any of the stations is unknown
func CombineStations(startStation string, endStation string) string {
	if startStation == "" || endStation == "" {
		return ""
	}
	return startStation + " " + endStation
}
