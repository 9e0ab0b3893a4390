package stationreport

import (
	"io"

	"github.com/dustin/go-humanize"

	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	reportType = "station-report"
	title      = "Calculating The Most Popular Stations and Trip..."
)

// StationReport contains the most popular stations and trip. Ties are broken by the
// first value seen in the trips. Unknown stations are not counted
type StationReport struct {
	MostCommonStartStation *frequency.ValueCount[string] `json:"most_common_start_station,omitempty"`
	MostCommonEndStation   *frequency.ValueCount[string] `json:"most_common_end_station,omitempty"`
	MostCommonTrip         *frequency.ValueCount[string] `json:"most_common_trip,omitempty"`
}

func NewStationReport() *StationReport {
	return &StationReport{}
}

func (sr *StationReport) GetType() string {
	return reportType
}

func (sr *StationReport) GetTitle() string {
	return title
}

func (sr *StationReport) Generate(trips []*trip.TripData, _ filter.Selection) {
	*sr = StationReport{}

	startStations := frequency.NewCounter[string]()
	endStations := frequency.NewCounter[string]()
	combinedStations := frequency.NewCounter[string]()
	for _, tripData := range trips {
		addKnownStation(startStations, tripData.StartStation)
		addKnownStation(endStations, tripData.EndStation)
		addKnownStation(combinedStations, tripData.StartEndStation)
	}

	if start, ok := startStations.Top(); ok {
		sr.MostCommonStartStation = &start
	}

	if end, ok := endStations.Top(); ok {
		sr.MostCommonEndStation = &end
	}

	if combined, ok := combinedStations.Top(); ok {
		sr.MostCommonTrip = &combined
	}
}

func (sr *StationReport) Render(writer io.Writer) error {
	printer := utils.NewPrinter(writer)
	if sr.MostCommonStartStation == nil && sr.MostCommonEndStation == nil {
		printer.Println("No trips match the selected filter.")
		return printer.Err()
	}

	printStation(printer, "Most commonly used start station:", sr.MostCommonStartStation)
	printStation(printer, "Most commonly used end station:", sr.MostCommonEndStation)
	printStation(printer, "Most popular combination of start station and end station trip:", sr.MostCommonTrip)
	if sr.MostCommonTrip != nil {
		printer.Println("Count:", humanize.Comma(int64(sr.MostCommonTrip.Count)))
	}
	return printer.Err()
}

func addKnownStation(counter *frequency.Counter[string], station string) {
	if station == "" {
		return
	}
	counter.Add(station)
}

func printStation(printer *utils.Printer, label string, station *frequency.ValueCount[string]) {
	if station == nil {
		printer.Println(label, "unknown")
		return
	}
	printer.Println(label, station.Value)
}
