package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/filter"
	"bikeshare/prompt"
	"bikeshare/reports/factory"
	"bikeshare/utils"
)

const (
	explorerType    = "explorer"
	contentTypeJson = "application/json"
	publishTimeout  = 5 * time.Second
)

type messagePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
}

// reportMessage is the message published for every generated report
type reportMessage struct {
	Metadata entities.Metadata `json:"metadata"`
	Report   factory.Report    `json:"report"`
}

type Explorer struct {
	config    *config.ExplorerConfig
	prompter  *prompt.Prompter
	output    io.Writer
	printer   *utils.Printer
	publisher messagePublisher
}

// NewExplorer returns an Explorer that talks with the user through input and output.
// publisher can be nil, in that case reports are only shown in the console
func NewExplorer(explorerConfig *config.ExplorerConfig, input io.Reader, output io.Writer, publisher messagePublisher) *Explorer {
	return &Explorer{
		config:    explorerConfig,
		prompter:  prompt.NewPrompter(input, output, explorerConfig),
		output:    output,
		printer:   utils.NewPrinter(output),
		publisher: publisher,
	}
}

func (e *Explorer) getLogMessage(runID string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[%s][runID: %s][method: %s][status: ERROR] %s: %s", explorerType, runID, method, message, err.Error())
	}
	return fmt.Sprintf("[%s][runID: %s][method: %s][status: OK] %s", explorerType, runID, method, message)
}

// Run analyzes the data chosen by the user and starts again while the user answers yes
func (e *Explorer) Run() error {
	for {
		runID := uuid.NewString()

		err := e.runOnce(runID)
		if errors.Is(err, prompt.ErrInputClosed) {
			log.Info(e.getLogMessage(runID, "Run", "input closed, stopping", nil))
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := e.prompter.AskRestart()
		if err != nil {
			return err
		}

		if !restart {
			log.Debug(e.getLogMessage(runID, "Run", "user does not want to restart", nil))
			return nil
		}
	}
}

// runOnce asks for the filters, loads the data and shows every report
func (e *Explorer) runOnce(runID string) error {
	cityName, selection, err := e.prompter.GetFilters()
	if err != nil {
		return err
	}

	city, err := e.config.GetCity(cityName)
	if err != nil {
		return err
	}

	log.Debug(e.getLogMessage(runID, "runOnce", fmt.Sprintf("loading %s with filter %s", city.Name, selection), nil))
	trips, err := dataset.LoadData(city, selection)
	if err != nil {
		log.Error(e.getLogMessage(runID, "runOnce", "error loading data", err))
		return err
	}

	for _, report := range factory.NewReports(city) {
		e.printer.Printf("\n%s\n\n", report.GetTitle())
		startTime := time.Now()

		report.Generate(trips, selection)
		if err := report.Render(e.output); err != nil {
			return errors.Wrapf(err, "error rendering %s", report.GetType())
		}

		e.printer.Printf("\nThis took %s.\n", time.Since(startTime))
		e.printer.Separator(e.config.SeparatorWidth)
		e.publishReport(runID, city, selection, report)
	}

	return e.printer.Err()
}

// publishReport sends the report to the reports queue. Errors are logged, the session goes on
func (e *Explorer) publishReport(runID string, city config.CityConfig, selection filter.Selection, report factory.Report) {
	if e.publisher == nil {
		return
	}

	message := reportMessage{
		Metadata: entities.NewMetadata(city.Name, report.GetType(), runID, selection.String()),
		Report:   report,
	}
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Error(e.getLogMessage(runID, "publishReport", "error marshalling report", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = e.publisher.PublishMessageInQueue(ctx, e.config.ReportsQueue.Name, messageBytes, contentTypeJson)
	if err != nil {
		log.Error(e.getLogMessage(runID, "publishReport", fmt.Sprintf("error publishing %s", report.GetType()), err))
		return
	}

	log.Debug(e.getLogMessage(runID, "publishReport", fmt.Sprintf("%s published", report.GetType()), nil))
}
