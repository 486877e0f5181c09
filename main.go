package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"dirdump/cmd"
	"dirdump/pkg/logging"

	"go.uber.org/zap"
)

func main() {
	logger := logging.New(os.Stdout, "dirdump", cmd.Version)

	// Execute the root command
	if err := cmd.Execute(logger); err != nil {
		if errors.Is(err, cmd.ErrUsage) {
			os.Exit(1)
		}
		logger.Fatal("dirdump execution failed", zap.Error(err))
	}

	// Check if stdout is a terminal or a regular file before attempting to sync.
	if logging.IsTerminal(os.Stdout) || logging.IsRegularFile(os.Stdout) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}
