package durationreport

import (
	"io"

	"github.com/dustin/go-humanize"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	reportType  = "duration-report"
	title       = "Calculating Trip Duration..."
	floatFormat = "#,###.##"
)

// DurationReport contains the total and average trip duration, in seconds.
// Trips without a duration are not counted
type DurationReport struct {
	TotalTravelTime   float64  `json:"total_travel_time"`
	Count             int      `json:"count"`
	AverageTravelTime *float64 `json:"average_travel_time,omitempty"`
}

func NewDurationReport() *DurationReport {
	return &DurationReport{}
}

func (dr *DurationReport) GetType() string {
	return reportType
}

func (dr *DurationReport) GetTitle() string {
	return title
}

func (dr *DurationReport) Generate(trips []*trip.TripData, _ filter.Selection) {
	*dr = DurationReport{}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range trips {
		if duration, ok := tripData.Duration.Get(); ok {
			accumulator.UpdateAccumulator(duration)
		}
	}

	dr.TotalTravelTime = accumulator.TotalDuration
	dr.Count = accumulator.Counter
	if accumulator.HasData() {
		average := accumulator.GetAverageDuration()
		dr.AverageTravelTime = &average
	}
}

func (dr *DurationReport) Render(writer io.Writer) error {
	printer := utils.NewPrinter(writer)
	if dr.AverageTravelTime == nil {
		printer.Println("No trip durations to share.")
		return printer.Err()
	}

	printer.Printf("Total travel time: %s seconds\n", humanize.FormatFloat(floatFormat, dr.TotalTravelTime))
	printer.Printf("Average duration of trips: %s seconds\n", humanize.FormatFloat(floatFormat, *dr.AverageTravelTime))
	printer.Println("Count:", humanize.Comma(int64(dr.Count)))
	return printer.Err()
}
