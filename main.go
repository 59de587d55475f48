package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/christinsong/hymnal/internal/cli"
	"github.com/christinsong/hymnal/internal/config"
	"github.com/christinsong/hymnal/internal/logging"
)

func main() {
	logPath := setupLogging()

	// Nothing below is allowed to crash the process without a trace: the
	// failure is logged and the user is pointed at the log file.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("unexpected fatal error")
			fmt.Fprintf(os.Stderr, "A fatal error occurred: %v\n", r)
			if logPath != "" {
				fmt.Fprintf(os.Stderr, "Details were written to %s\n", logPath)
			}
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "import-hymns":
		cmd := cli.NewImportHymnsCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "backup":
		cmd := cli.NewBackupCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "stats":
		cmd := cli.NewStatsCommand()
		if err := cmd.ParseFlags(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// setupLogging configures the global logger as early as possible so even
// configuration failures leave a trace. Errors are not fatal here.
func setupLogging() string {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return ""
	}
	path, err := logging.Setup(cfg.Logging.Dir, config.LogFilename, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return path
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  import-hymns  Download a hymnal JSON document and replace the hymn collection\n")
	fmt.Fprintf(os.Stderr, "  backup        Create a timestamped copy of the hymnal database\n")
	fmt.Fprintf(os.Stderr, "  stats         Show hymn, category, and favourite counts\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
