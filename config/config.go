package config

import (
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
)

//go:embed config.yaml
var configFile []byte

var ErrUnknownCity = errors.New("unknown city")

// CityConfig describes where the trips of a city live
// + Name: lower-case city name, as the user types it
// + File: CSV file path, relative to the working directory
// + HasDemographics: true if the CSV contains the Gender and Birth Year columns
type CityConfig struct {
	Name            string `yaml:"name"`
	File            string `yaml:"file"`
	HasDemographics bool   `yaml:"has_demographics"`
}

type ExplorerConfig struct {
	LogLevel       string                               `yaml:"log_level"`
	SeparatorWidth int                                  `yaml:"separator_width"`
	Cities         []CityConfig                         `yaml:"cities"`
	Months         []string                             `yaml:"months"`
	Days           []string                             `yaml:"days"`
	ReportsQueue   communication.QueueDeclarationConfig `yaml:"reports_queue"`
}

// LoadConfig parses the configuration embedded in the binary
func LoadConfig() (*ExplorerConfig, error) {
	return ParseConfig(configFile)
}

// LoadConfigFile parses the configuration stored in filepath. It replaces the embedded
// one, e.g. to point the cities to CSV files stored somewhere else
func LoadConfigFile(filepath string) (*ExplorerConfig, error) {
	configFile, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file")
	}
	defer configFile.Close()

	configFileBytes, err := io.ReadAll(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	return ParseConfig(configFileBytes)
}

// ParseConfig parses and validates a YAML configuration
func ParseConfig(rawConfig []byte) (*ExplorerConfig, error) {
	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(rawConfig, &explorerConfig)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing explorer config file")
	}

	if len(explorerConfig.Cities) == 0 {
		return nil, errors.New("error parsing explorer config file: no cities configured")
	}

	for _, city := range explorerConfig.Cities {
		if city.Name == "" || city.File == "" {
			return nil, errors.Errorf("error parsing explorer config file: city %q needs a name and a file", city.Name)
		}
	}

	if len(explorerConfig.Months) == 0 || len(explorerConfig.Days) == 0 {
		return nil, errors.New("error parsing explorer config file: months and days are required")
	}

	if explorerConfig.SeparatorWidth <= 0 {
		explorerConfig.SeparatorWidth = 40
	}

	return &explorerConfig, nil
}

// GetCity returns the configuration of the given city
func (ec *ExplorerConfig) GetCity(name string) (CityConfig, error) {
	for _, city := range ec.Cities {
		if city.Name == name {
			return city, nil
		}
	}
	return CityConfig{}, errors.Wrapf(ErrUnknownCity, "city %q", name)
}

// CityNames returns the configured city names, in configuration order
func (ec *ExplorerConfig) CityNames() []string {
	names := make([]string, 0, len(ec.Cities))
	for _, city := range ec.Cities {
		names = append(names, city.Name)
	}
	return names
}
