package main

import (
	"fmt"
	"os"
	"path/filepath"

	"selftalk/internal/cli"
	"selftalk/internal/db"
	"selftalk/internal/domain"
	"selftalk/internal/recorder"
	"selftalk/internal/repository"
	"selftalk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.selftalk/selftalk.db
	dbPath := os.Getenv("SELFTALK_DB")
	dataDir := ""
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".selftalk")
		dbPath = filepath.Join(dataDir, "selftalk.db")
	} else {
		dataDir = filepath.Dir(dbPath)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Soft failures (store writes, plan fetches) are reported here
	// rather than returned to the UI.
	observer := service.NewLogUseCaseObserver(os.Stderr)

	// Wire repositories and services
	blobStore := repository.NewSQLiteBlobStore(database)
	recordingRepo := repository.NewSQLiteRecordingLogRepo(database)

	app := &cli.App{
		Progress:   service.NewProgressService(blobStore, observer),
		Plans:      service.NewPlanService(os.Getenv("SELFTALK_DATA_URL"), observer),
		Recordings: service.NewRecordingLogService(recordingRepo, observer),

		Gateway:       recorder.NewMalgoGateway(),
		RecordingsDir: filepath.Join(dataDir, "recordings"),
		Locale:        domain.LocaleZH,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
