// Package filter selects which trips are analyzed in a run
package filter

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	ModeNone  = "none"
	ModeMonth = "month"
	ModeDay   = "day"
)

var (
	ErrBothFilters  = errors.New("month and day filters cannot be combined")
	ErrInvalidMonth = errors.New("invalid month")
)

// Selection is the filter chosen by the user. At most one of its fields is set:
// + Month: 0 when unset, otherwise 1 = January ... 12 = December
// + Day: empty when unset, otherwise a lower-case weekday name
type Selection struct {
	Month int    `json:"month"`
	Day   string `json:"day"`
}

func NoFilter() Selection {
	return Selection{}
}

func ByMonth(month int) Selection {
	return Selection{Month: month}
}

func ByDay(day string) Selection {
	return Selection{Day: utils.NormalizeInput(day)}
}

func (s Selection) IsMonthFilter() bool {
	return s.Month != 0
}

func (s Selection) IsDayFilter() bool {
	return s.Day != ""
}

func (s Selection) IsNone() bool {
	return !s.IsMonthFilter() && !s.IsDayFilter()
}

// Validate returns an error if the selection mixes both filters or has a month out of range
func (s Selection) Validate() error {
	if s.IsMonthFilter() && s.IsDayFilter() {
		return ErrBothFilters
	}

	if s.Month < 0 || s.Month > 12 {
		return errors.Wrapf(ErrInvalidMonth, "month %v", s.Month)
	}

	return nil
}

// Matches returns true if the trip must be kept by the selection
func (s Selection) Matches(tripData *trip.TripData) bool {
	if s.IsMonthFilter() {
		return tripData.Month == s.Month
	}

	if s.IsDayFilter() {
		return tripData.DayOfWeek == utils.Title(s.Day)
	}

	return true
}

// Apply returns the trips that match the selection. Without a filter the same slice is returned
func (s Selection) Apply(trips []*trip.TripData) []*trip.TripData {
	if s.IsNone() {
		return trips
	}

	filtered := make([]*trip.TripData, 0, len(trips))
	for _, tripData := range trips {
		if s.Matches(tripData) {
			filtered = append(filtered, tripData)
		}
	}
	return filtered
}

func (s Selection) String() string {
	if s.IsMonthFilter() {
		return fmt.Sprintf("%s: %s", ModeMonth, time.Month(s.Month).String())
	}

	if s.IsDayFilter() {
		return fmt.Sprintf("%s: %s", ModeDay, utils.Title(s.Day))
	}

	return ModeNone
}
