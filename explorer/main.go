package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/config"
)

const (
	logLevelEnv   = "LOG_LEVEL"
	rabbitURLEnv  = "RABBIT_URL"
	configFileEnv = "BIKESHARE_CONFIG"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%s", err)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	explorerConfig, err := loadConfig(os.Getenv(configFileEnv))
	if err != nil {
		return err
	}

	logLevel := os.Getenv(logLevelEnv)
	if logLevel == "" {
		logLevel = explorerConfig.LogLevel
	}
	if err := InitLogger(logLevel); err != nil {
		return err
	}

	publisher, closePublisher := initPublisher(os.Getenv(rabbitURLEnv), explorerConfig)
	defer closePublisher()

	explorer := NewExplorer(explorerConfig, os.Stdin, os.Stdout, publisher)
	return explorer.Run()
}

func loadConfig(configFile string) (*config.ExplorerConfig, error) {
	if configFile == "" {
		return config.LoadConfig()
	}
	return config.LoadConfigFile(configFile)
}

// initPublisher connects to RabbitMQ when rabbitURL is set. Reports are only published if the
// connection and the reports queue are ready, otherwise the explorer works offline
func initPublisher(rabbitURL string, explorerConfig *config.ExplorerConfig) (messagePublisher, func()) {
	noop := func() {}
	if rabbitURL == "" {
		return nil, noop
	}

	rabbitMQ, err := communication.NewRabbitMQ(rabbitURL)
	if err != nil {
		log.Errorf("[%s][status: ERROR] reports will not be published: %s", explorerType, err.Error())
		return nil, noop
	}

	closeRabbitMQ := func() {
		if err := rabbitMQ.KillBadBunny(); err != nil {
			log.Errorf("[%s][status: ERROR] %s", explorerType, err.Error())
		}
	}

	err = rabbitMQ.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{explorerConfig.ReportsQueue})
	if err != nil {
		log.Errorf("[%s][status: ERROR] reports will not be published: %s", explorerType, err.Error())
		closeRabbitMQ()
		return nil, noop
	}

	log.Infof("[%s][status: OK] publishing reports in queue %s", explorerType, explorerConfig.ReportsQueue.Name)
	return rabbitMQ, closeRabbitMQ
}
