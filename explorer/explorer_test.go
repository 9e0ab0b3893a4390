package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/config"
	"bikeshare/domain/entities"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,Male,1981.0
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330037,2017-03-30 17:49:00,2017-03-30 18:09:00,1204.366,17th St & Massachusetts Ave NW,5th & K St NW,Customer
`

type publishedMessage struct {
	queueName   string
	contentType string
	body        []byte
}

type fakePublisher struct {
	messages []publishedMessage
	err      error
}

func (fp *fakePublisher) PublishMessageInQueue(_ context.Context, queueName string, message []byte, contentType string) error {
	if fp.err != nil {
		return fp.err
	}
	fp.messages = append(fp.messages, publishedMessage{queueName: queueName, contentType: contentType, body: message})
	return nil
}

// newTestConfig points every city to a CSV file inside a temporary directory
func newTestConfig(t *testing.T) *config.ExplorerConfig {
	t.Helper()
	explorerConfig, err := config.LoadConfig()
	require.NoError(t, err)

	dir := t.TempDir()
	files := map[string]string{
		"chicago":    chicagoCSV,
		"washington": washingtonCSV,
	}
	for idx, city := range explorerConfig.Cities {
		path := filepath.Join(dir, filepath.Base(city.File))
		explorerConfig.Cities[idx].File = path

		content, ok := files[city.Name]
		if !ok {
			continue
		}
		require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	}
	return explorerConfig
}

func runExplorer(t *testing.T, explorerConfig *config.ExplorerConfig, input string, publisher messagePublisher) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	explorer := NewExplorer(explorerConfig, strings.NewReader(input), out, publisher)
	err := explorer.Run()
	return out.String(), err
}

func TestRunWithoutFilter(t *testing.T) {
	output, err := runExplorer(t, newTestConfig(t), "chicago\nnone\nno\n", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(output, "Hello! Let's explore some US bikeshare data!"))
	assert.Contains(t, output, "Calculating The Most Frequent Times of Travel...")
	assert.Contains(t, output, "Most Frequent Month: January")
	assert.Contains(t, output, "Most Frequent Day:")
	assert.Contains(t, output, "Calculating The Most Popular Stations and Trip...")
	assert.Contains(t, output, "Calculating Trip Duration...")
	assert.Contains(t, output, "Total travel time: 2,347.00 seconds")
	assert.Contains(t, output, "Calculating User Stats...")
	assert.Contains(t, output, "What is the breakdown of genders?")
	assert.Contains(t, output, "Male: 2")
	assert.Contains(t, output, "The oldest rider's year of birth: 1981")
	assert.Contains(t, output, "Most common year of birth: 1992")
	assert.Equal(t, 4, strings.Count(output, "This took "))
}

func TestRunWashingtonWithMonthFilter(t *testing.T) {
	output, err := runExplorer(t, newTestConfig(t), "Washington\nmonth\nmarch\nno\n", nil)
	require.NoError(t, err)

	assert.NotContains(t, output, "Most Frequent Month:")
	assert.Contains(t, output, "Most Frequent Day:")
	assert.Contains(t, output, "Most Frequent Hour:")
	assert.Contains(t, output, "Total number of users: 2")
	assert.Contains(t, output, "No gender data to share.")
	assert.Contains(t, output, "No birth year data to share.")
	assert.NotContains(t, output, "What is the breakdown of genders?")
}

func TestRunWithDayFilterWithoutMatches(t *testing.T) {
	output, err := runExplorer(t, newTestConfig(t), "chicago\nday\nsunday\nno\n", nil)
	require.NoError(t, err)

	assert.Contains(t, output, "No trips match the selected filter.")
	assert.NotContains(t, output, "Most Frequent Day:")
}

func TestRunRestartsOnlyOnYes(t *testing.T) {
	testCases := []struct {
		name               string
		input              string
		expectedIterations int
	}{
		{name: "no", input: "chicago\nnone\nno\n", expectedIterations: 1},
		{name: "anything else", input: "chicago\nnone\nsure\n", expectedIterations: 1},
		{name: "input closed at restart", input: "chicago\nnone\n", expectedIterations: 1},
		{name: "yes then no", input: "chicago\nnone\nyes\nwashington\nday\nsaturday\nno\n", expectedIterations: 2},
		{name: "input closed after yes", input: "chicago\nnone\nYES\nchicago\n", expectedIterations: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := runExplorer(t, newTestConfig(t), tc.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedIterations, strings.Count(output, "Hello! Let's explore some US bikeshare data!"))
		})
	}
}

func TestRunReturnsLoadErrors(t *testing.T) {
	// new york city has no CSV file in the test directory
	output, err := runExplorer(t, newTestConfig(t), "new york city\nnone\nno\n", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), err.Error())
	assert.NotContains(t, output, "Calculating")
}

func TestRunPublishesEveryReport(t *testing.T) {
	explorerConfig := newTestConfig(t)
	publisher := &fakePublisher{}

	_, err := runExplorer(t, explorerConfig, "washington\nmonth\nmarch\nno\n", publisher)
	require.NoError(t, err)
	require.Len(t, publisher.messages, 4)

	expectedTypes := []string{"time-report", "station-report", "duration-report", "user-report"}
	var runID string
	for idx, message := range publisher.messages {
		assert.Equal(t, explorerConfig.ReportsQueue.Name, message.queueName)
		assert.Equal(t, contentTypeJson, message.contentType)

		var decoded struct {
			Metadata entities.Metadata `json:"metadata"`
			Report   json.RawMessage   `json:"report"`
		}
		require.NoError(t, json.Unmarshal(message.body, &decoded))
		assert.Equal(t, expectedTypes[idx], decoded.Metadata.Type)
		assert.Equal(t, "washington", decoded.Metadata.City)
		assert.Equal(t, "month: March", decoded.Metadata.Message)
		assert.NotEmpty(t, decoded.Metadata.Stage)
		if idx == 0 {
			runID = decoded.Metadata.Stage
		}
		assert.Equal(t, runID, decoded.Metadata.Stage, "every report of a run shares the run ID")
	}

	var durationMessage struct {
		Report struct {
			Count int `json:"count"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(publisher.messages[2].body, &durationMessage))
	assert.Equal(t, 2, durationMessage.Report.Count)
}

func TestRunKeepsGoingWhenPublishFails(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("connection closed")}

	output, err := runExplorer(t, newTestConfig(t), "chicago\nnone\nno\n", publisher)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(output, "This took "))
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger("debug"))
	assert.NoError(t, InitLogger("WARN"))
	assert.Error(t, InitLogger("verbose"))
}

func TestInitPublisherWithoutURL(t *testing.T) {
	explorerConfig := newTestConfig(t)
	publisher, closePublisher := initPublisher("", explorerConfig)
	assert.Nil(t, publisher)
	assert.NotPanics(t, closePublisher)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	explorerConfig, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"chicago", "new york city", "washington"}, explorerConfig.CityNames())

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
