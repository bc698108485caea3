package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/djok/ubb-statement-extractor/cmd/batch"
	"github.com/djok/ubb-statement-extractor/cmd/extract"
	"github.com/djok/ubb-statement-extractor/cmd/root"
	"github.com/djok/ubb-statement-extractor/cmd/validate"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	logrus.SetLevel(configureLogLevelDirectly())

	// 3. Initialize the root command and attach subcommands
	root.Init()
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly resolves the log level from the environment
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
