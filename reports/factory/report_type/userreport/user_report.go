package userreport

import (
	"io"

	"github.com/dustin/go-humanize"

	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const (
	reportType = "user-report"
	title      = "Calculating User Stats..."
)

// UserReport contains statistics about the riders. Gender and birth year fields are only
// computed for cities with demographic data
type UserReport struct {
	HasDemographics     bool                           `json:"has_demographics"`
	TotalUsers          int                            `json:"total_users"`
	UserTypes           []frequency.ValueCount[string] `json:"user_types"`
	Genders             []frequency.ValueCount[string] `json:"genders,omitempty"`
	EarliestBirthYear   *int                           `json:"earliest_birth_year,omitempty"`
	LatestBirthYear     *int                           `json:"latest_birth_year,omitempty"`
	MostCommonBirthYear *int                           `json:"most_common_birth_year,omitempty"`
}

func NewUserReport(hasDemographics bool) *UserReport {
	return &UserReport{HasDemographics: hasDemographics}
}

func (ur *UserReport) GetType() string {
	return reportType
}

func (ur *UserReport) GetTitle() string {
	return title
}

func (ur *UserReport) Generate(trips []*trip.TripData, _ filter.Selection) {
	*ur = UserReport{HasDemographics: ur.HasDemographics}

	userTypes := frequency.NewCounter[string]()
	for _, tripData := range trips {
		if userType, ok := tripData.UserType.Get(); ok {
			userTypes.Add(userType)
		}
	}
	ur.TotalUsers = userTypes.GetTotal()
	ur.UserTypes = userTypes.Ranking()

	if !ur.HasDemographics {
		return
	}

	genders := frequency.NewCounter[string]()
	birthYears := frequency.NewCounter[int]()
	for _, tripData := range trips {
		if gender, ok := tripData.Gender.Get(); ok {
			genders.Add(gender)
		}

		birthYear, ok := tripData.BirthYear.Get()
		if !ok {
			continue
		}

		year := int(birthYear)
		birthYears.Add(year)
		if ur.EarliestBirthYear == nil || year < *ur.EarliestBirthYear {
			earliest := year
			ur.EarliestBirthYear = &earliest
		}
		if ur.LatestBirthYear == nil || year > *ur.LatestBirthYear {
			latest := year
			ur.LatestBirthYear = &latest
		}
	}
	ur.Genders = genders.Ranking()

	if mostCommon, ok := birthYears.Top(); ok {
		ur.MostCommonBirthYear = &mostCommon.Value
	}
}

func (ur *UserReport) Render(writer io.Writer) error {
	printer := utils.NewPrinter(writer)
	printer.Println("Total number of users:", humanize.Comma(int64(ur.TotalUsers)))

	if !ur.HasDemographics {
		printBreakdown(printer, ur.UserTypes)
		printer.Println("\nNo gender data to share.")
		printer.Println("\nNo birth year data to share.")
		return printer.Err()
	}

	printer.Println("\nWhat is the breakdown of users?")
	printBreakdown(printer, ur.UserTypes)

	printer.Println("\nWhat is the breakdown of genders?")
	if len(ur.Genders) == 0 {
		printer.Println("No gender data to share.")
	}
	printBreakdown(printer, ur.Genders)

	if ur.MostCommonBirthYear == nil {
		printer.Println("\nNo birth year data to share.")
		return printer.Err()
	}

	printer.Println("\nThe oldest rider's year of birth:", *ur.EarliestBirthYear)
	printer.Println("The youngest rider's year of birth:", *ur.LatestBirthYear)
	printer.Println("Most common year of birth:", *ur.MostCommonBirthYear)
	return printer.Err()
}

func printBreakdown(printer *utils.Printer, breakdown []frequency.ValueCount[string]) {
	for _, valueCount := range breakdown {
		printer.Printf("%s: %s\n", valueCount.Value, humanize.Comma(int64(valueCount.Count)))
	}
}
