package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/api"
	"github.com/TJZine/CertPrep.ai-sub000/internal/client/cli"
	"github.com/TJZine/CertPrep.ai-sub000/internal/client/data"
	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage/boltdb"
	"github.com/TJZine/CertPrep.ai-sub000/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "certprep-client.db", "Path to local database")
	userID := flag.String("user", os.Getenv("CERTPREP_USER_ID"), "User id")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "No user id: pass --user or set CERTPREP_USER_ID")
		os.Exit(1)
	}

	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	dataService := data.NewService(boltStorage)
	syncService := sync.NewService(apiClient, boltStorage, boltStorage, logger)

	app := cli.New(*userID, dataService, syncService, boltStorage)

	switch command {
	case "sync":
		if err := app.RunSync(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "status":
		if err := app.RunStatus(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "doctor":
		if err := app.RunDoctor(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "list":
		if err := app.RunList(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "add-quiz":
		if err := app.RunAddQuiz(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "delete":
		if err := app.RunDelete(ctx, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("CertPrep Sync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
