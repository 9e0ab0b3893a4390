package factory

import (
	"fmt"
	"io"

	"bikeshare/config"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/reports/factory/report_type/durationreport"
	"bikeshare/reports/factory/report_type/stationreport"
	"bikeshare/reports/factory/report_type/timereport"
	"bikeshare/reports/factory/report_type/userreport"
)

const (
	timeReportType     = "time-report"
	stationReportType  = "station-report"
	durationReportType = "duration-report"
	userReportType     = "user-report"
)

// reportTypes is the order in which reports are shown to the user
var reportTypes = []string{timeReportType, stationReportType, durationReportType, userReportType}

type Report interface {
	GetType() string
	GetTitle() string
	Generate(trips []*trip.TripData, selection filter.Selection)
	Render(writer io.Writer) error
}

// NewReport initialize a report of some type.
// Possible report types are: time-report, station-report, duration-report, user-report
func NewReport(reportType string, city config.CityConfig) (Report, error) {
	switch reportType {
	case timeReportType:
		return timereport.NewTimeReport(), nil
	case stationReportType:
		return stationreport.NewStationReport(), nil
	case durationReportType:
		return durationreport.NewDurationReport(), nil
	case userReportType:
		return userreport.NewUserReport(city.HasDemographics), nil
	}

	return nil, fmt.Errorf("[method: NewReport][status: error] Invalid report type %s", reportType)
}

// NewReports returns every report for the city, in the order they are shown
func NewReports(city config.CityConfig) []Report {
	reports := make([]Report, 0, len(reportTypes))
	for _, reportType := range reportTypes {
		report, err := NewReport(reportType, city)
		if err != nil {
			panic(err)
		}
		reports = append(reports, report)
	}
	return reports
}
