// Package prompt asks the user which city and filter to analyze
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	restartAnswer = "yes"
	// maxAnswerLength longer answers are discarded and the question is asked again
	maxAnswerLength = 4096
)

var (
	ErrInputClosed = errors.New("input closed")
	filterModes    = []string{filter.ModeMonth, filter.ModeDay, filter.ModeNone}
)

// Prompter reads answers line by line. Every question is repeated until the answer is valid
type Prompter struct {
	reader  *bufio.Reader
	printer *utils.Printer
	config  *config.ExplorerConfig
}

func NewPrompter(input io.Reader, output io.Writer, explorerConfig *config.ExplorerConfig) *Prompter {
	return &Prompter{
		reader:  bufio.NewReader(input),
		printer: utils.NewPrinter(output),
		config:  explorerConfig,
	}
}

// GetFilters asks the user for a city and an optional month or day filter.
// The returned city is one of the configured city names, in lower case
func (p *Prompter) GetFilters() (string, filter.Selection, error) {
	p.printer.Println("Hello! Let's explore some US bikeshare data!")

	city, err := p.askCity()
	if err != nil {
		return "", filter.Selection{}, err
	}

	selection, err := p.askFilter()
	if err != nil {
		return "", filter.Selection{}, err
	}

	p.printer.Separator(p.config.SeparatorWidth)
	return city, selection, p.printer.Err()
}

// AskRestart returns true only if the user answers yes, in any case. A closed input counts as a no
func (p *Prompter) AskRestart() (bool, error) {
	answer, err := p.readLine("\nWould you like to restart? Enter yes or no.\n")
	if errors.Is(err, ErrInputClosed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return strings.ToLower(answer) == restartAnswer, nil
}

func (p *Prompter) askCity() (string, error) {
	cityNames := p.config.CityNames()
	question := fmt.Sprintf("\nWould you like to see data for %s? Please, enter the name of the city.\n", utils.JoinOptions(titleAll(cityNames)))

	for {
		answer, err := p.readLine(question)
		if err != nil {
			return "", err
		}

		city := utils.NormalizeInput(answer)
		if utils.ContainsString(city, cityNames) {
			p.printer.Printf("\nLooks like you want to hear about %s!\nIf you are interested in another city, restart the program.\n", utils.Title(city))
			return city, nil
		}

		log.Debugf("[prompt][question: city][status: invalid] %q", answer)
		p.printer.Println("\nEnter a valid city name.")
	}
}

func (p *Prompter) askFilter() (filter.Selection, error) {
	question := "\nWould you like to filter the data by month, day, or not at all? Type \"none\" for no time filter.\n"

	for {
		answer, err := p.readLine(question)
		if err != nil {
			return filter.Selection{}, err
		}

		mode := utils.NormalizeInput(answer)
		if !utils.ContainsString(mode, filterModes) {
			log.Debugf("[prompt][question: filter][status: invalid] %q", answer)
			p.printer.Printf("\nPlease enter one of the options: %s\n", utils.JoinOptions(filterModes))
			continue
		}

		switch mode {
		case filter.ModeMonth:
			p.printer.Printf("\nYou betcha! We will make sure to filter by %s!\n", mode)
			month, err := p.askMonth()
			if err != nil {
				return filter.Selection{}, err
			}
			return filter.ByMonth(month), nil
		case filter.ModeDay:
			p.printer.Printf("\nYou betcha! We will make sure to filter by %s!\n", mode)
			day, err := p.askDay()
			if err != nil {
				return filter.Selection{}, err
			}
			return filter.ByDay(day), nil
		case filter.ModeNone:
			p.printer.Println("\nYou betcha! We won't filter the data!")
			return filter.NoFilter(), nil
		}
	}
}

// askMonth returns the month as a number, 1 = January
func (p *Prompter) askMonth() (int, error) {
	question := fmt.Sprintf("\nWhich month - %s?\n", strings.Join(titleAll(p.config.Months), ", "))

	for {
		answer, err := p.readLine(question)
		if err != nil {
			return 0, err
		}

		idx := utils.IndexOfString(utils.NormalizeInput(answer), p.config.Months)
		if idx >= 0 {
			return idx + 1, nil
		}

		log.Debugf("[prompt][question: month][status: invalid] %q", answer)
		p.printer.Println("\nPlease enter a valid month name!")
	}
}

func (p *Prompter) askDay() (string, error) {
	question := fmt.Sprintf("\nWhich day - %s?\n", utils.JoinOptions(titleAll(p.config.Days)))

	for {
		answer, err := p.readLine(question)
		if err != nil {
			return "", err
		}

		day := utils.NormalizeInput(answer)
		if utils.ContainsString(day, p.config.Days) {
			return day, nil
		}

		log.Debugf("[prompt][question: day][status: invalid] %q", answer)
		p.printer.Println("\nPlease enter a valid day name!")
	}
}

// readLine prints the question and waits for a line of input. A line longer than
// maxAnswerLength is consumed and returned as an empty answer
func (p *Prompter) readLine(question string) (string, error) {
	p.printer.Printf("%s", question)
	if err := p.printer.Err(); err != nil {
		return "", errors.Wrap(err, "error writing question")
	}

	var answer []byte
	tooLong := false
	for {
		chunk, err := p.reader.ReadSlice('\n')
		if len(answer)+len(chunk) > maxAnswerLength {
			tooLong = true
		} else if !tooLong {
			answer = append(answer, chunk...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(answer) == 0 && !tooLong {
				return "", ErrInputClosed
			}
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "error reading answer")
		}
		break
	}

	if tooLong {
		log.Debugf("[prompt][status: invalid] answer longer than %v bytes discarded", maxAnswerLength)
		return "", nil
	}

	return strings.TrimRight(string(answer), "\r\n"), nil
}

func titleAll(options []string) []string {
	titled := make([]string, 0, len(options))
	for _, option := range options {
		titled = append(titled, utils.Title(option))
	}
	return titled
}
