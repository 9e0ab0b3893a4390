// Package dataset reads the trips of a city and applies the filter chosen by the user
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

const (
	dateLayout = "2006-01-02 15:04:05"
	byteOrder  = "\ufeff"

	startTimeColumn    = "Start Time"
	endTimeColumn      = "End Time"
	durationColumn     = "Trip Duration"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"
)

var (
	requiredColumns    = []string{startTimeColumn, endTimeColumn, durationColumn, startStationColumn, endStationColumn, userTypeColumn}
	demographicColumns = []string{genderColumn, birthYearColumn}
)

// columnIndexes contains the index of each field to analyze. Gender and BirthYear are -1
// for cities without demographic data
type columnIndexes struct {
	StartTime    int
	EndTime      int
	Duration     int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

// LoadData reads the CSV of the city and returns the trips that match the selection
func LoadData(city config.CityConfig, selection filter.Selection) ([]*trip.TripData, error) {
	if err := selection.Validate(); err != nil {
		return nil, err
	}

	dataFile, err := os.Open(city.File)
	if err != nil {
		return nil, errors.Wrapf(err, "[city: %s] error opening %s", city.Name, city.File)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("[city: %s] error closing %s: %s", city.Name, city.File, err.Error())
		}
	}(dataFile)

	trips, err := ReadTrips(dataFile, city.HasDemographics)
	if err != nil {
		return nil, errors.Wrapf(err, "[city: %s] error reading %s", city.Name, city.File)
	}

	filtered := selection.Apply(trips)
	log.Debugf("[city: %s][filter: %s] %v trips loaded, %v kept", city.Name, selection, len(trips), len(filtered))
	return filtered, nil
}

// ReadTrips parses every row of a bikeshare CSV. The Gender and Birth Year columns are only
// read when withDemographics is true, and in that case they must exist.
func ReadTrips(reader io.Reader, withDemographics bool) ([]*trip.TripData, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "error reading header")
	}

	indexes, err := getColumnIndexes(header, withDemographics)
	if err != nil {
		return nil, err
	}

	var trips []*trip.TripData
	line := 1
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		line += 1
		if err != nil {
			return nil, errors.Wrapf(err, "error reading line %v", line)
		}

		tripData, err := getTripData(record, indexes)
		if err != nil {
			return nil, errors.Wrapf(err, "line %v", line)
		}
		trips = append(trips, tripData)
	}

	return trips, nil
}

func getColumnIndexes(header []string, withDemographics bool) (columnIndexes, error) {
	positions := make(map[string]int, len(header))
	for idx, column := range header {
		column = strings.TrimSpace(strings.TrimPrefix(column, byteOrder))
		positions[column] = idx
	}

	expectedColumns := requiredColumns
	if withDemographics {
		expectedColumns = append(append([]string{}, requiredColumns...), demographicColumns...)
	}

	var missing []string
	for _, column := range expectedColumns {
		if _, ok := positions[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return columnIndexes{}, errors.Wrapf(ErrMissingColumn, "%s", strings.Join(missing, ", "))
	}

	indexes := columnIndexes{
		StartTime:    positions[startTimeColumn],
		EndTime:      positions[endTimeColumn],
		Duration:     positions[durationColumn],
		StartStation: positions[startStationColumn],
		EndStation:   positions[endStationColumn],
		UserType:     positions[userTypeColumn],
		Gender:       -1,
		BirthYear:    -1,
	}

	if withDemographics {
		indexes.Gender = positions[genderColumn]
		indexes.BirthYear = positions[birthYearColumn]
	}

	return indexes, nil
}

func getTripData(record []string, indexes columnIndexes) (*trip.TripData, error) {
	startTimeStr := strings.TrimSpace(record[indexes.StartTime])
	startTime, err := time.Parse(dateLayout, startTimeStr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDate, "%s %q", startTimeColumn, startTimeStr)
	}

	var endTime time.Time
	endTimeStr := strings.TrimSpace(record[indexes.EndTime])
	if endTimeStr != "" {
		endTime, err = time.Parse(dateLayout, endTimeStr)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidDate, "%s %q", endTimeColumn, endTimeStr)
		}
	}

	duration, err := getOptionalFloat(record[indexes.Duration], durationColumn)
	if err != nil {
		return nil, err
	}

	gender := entities.None[string]()
	birthYear := entities.None[float64]()
	if indexes.Gender >= 0 {
		gender = getOptionalString(record[indexes.Gender])
		birthYear, err = getOptionalFloat(record[indexes.BirthYear], birthYearColumn)
		if err != nil {
			return nil, err
		}
	}

	return trip.NewTripData(
		startTime,
		endTime,
		duration,
		strings.TrimSpace(record[indexes.StartStation]),
		strings.TrimSpace(record[indexes.EndStation]),
		getOptionalString(record[indexes.UserType]),
		gender,
		birthYear,
	), nil
}

func getOptionalString(value string) entities.Optional[string] {
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.None[string]()
	}
	return entities.Some(value)
}

func getOptionalFloat(value string, column string) (entities.Optional[float64], error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return entities.None[float64](), nil
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return entities.None[float64](), errors.Wrapf(ErrInvalidNumber, "%s %q", column, value)
	}
	return entities.Some(number), nil
}
