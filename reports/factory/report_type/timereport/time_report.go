package timereport

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	reportType = "time-report"
	title      = "Calculating The Most Frequent Times of Travel..."
)

// TimeReport contains the most frequent times of travel.
// + MostFrequentMonth: only set when the trips are not filtered by month
// + MostFrequentDay: only set when the trips are not filtered by day
// + MostFrequentHour: hour of the day in which more trips begin
// + HourCount: amount of trips with a start hour
type TimeReport struct {
	MostFrequentMonth *frequency.ValueCount[int]    `json:"most_frequent_month,omitempty"`
	MostFrequentDay   *frequency.ValueCount[string] `json:"most_frequent_day,omitempty"`
	MostFrequentHour  *frequency.ValueCount[int]    `json:"most_frequent_hour,omitempty"`
	HourCount         int                           `json:"hour_count"`
}

func NewTimeReport() *TimeReport {
	return &TimeReport{}
}

func (tr *TimeReport) GetType() string {
	return reportType
}

func (tr *TimeReport) GetTitle() string {
	return title
}

// Generate computes the report. The month is skipped under a month filter and the
// day under a day filter, since they are constant across the trips
func (tr *TimeReport) Generate(trips []*trip.TripData, selection filter.Selection) {
	*tr = TimeReport{}

	months := frequency.NewCounter[int]()
	days := frequency.NewCounter[string]()
	hours := frequency.NewCounter[int]()
	for _, tripData := range trips {
		months.Add(tripData.Month)
		days.Add(tripData.DayOfWeek)
		hours.Add(tripData.Hour)
	}

	if !selection.IsMonthFilter() {
		if month, ok := months.Mode(); ok {
			tr.MostFrequentMonth = &month
		}
	}

	if !selection.IsDayFilter() {
		if day, ok := days.Top(); ok {
			tr.MostFrequentDay = &day
		}
	}

	if hour, ok := hours.Mode(); ok {
		tr.MostFrequentHour = &hour
	}
	tr.HourCount = hours.GetTotal()
}

func (tr *TimeReport) Render(writer io.Writer) error {
	printer := utils.NewPrinter(writer)
	if tr.HourCount == 0 {
		printer.Println("No trips match the selected filter.")
		return printer.Err()
	}

	if tr.MostFrequentMonth != nil {
		printer.Println("Most Frequent Month:", time.Month(tr.MostFrequentMonth.Value).String())
	}

	if tr.MostFrequentDay != nil {
		printer.Println("Most Frequent Day:", tr.MostFrequentDay.Value)
	}

	printer.Println("Most Frequent Hour:", tr.MostFrequentHour.Value)
	printer.Println("Count:", humanize.Comma(int64(tr.HourCount)))
	return printer.Err()
}
