// Package cli implements the maintenance subcommands: hymnal import,
// manual backup, and database statistics.
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/christinsong/hymnal/internal/config"
	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/hymnals"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// ImportHymnsCommand downloads a hymnal JSON document and replaces the
// hymn table with its contents.
type ImportHymnsCommand struct {
	URL          string
	DatabasePath string
	Yes          bool
	DryRun       bool
	Verbose      bool
}

func NewImportHymnsCommand() *ImportHymnsCommand {
	return &ImportHymnsCommand{}
}

func (cmd *ImportHymnsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-hymns", flag.ExitOnError)

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	fs.StringVar(&cmd.URL, "url", cfg.Hymnals.URL, "URL of the hymnal JSON document to import")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the hymnal database file")
	fs.BoolVar(&cmd.Yes, "yes", false, "Skip the confirmation prompt")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Download and validate without touching the database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List every imported hymn")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-hymns [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Download a hymnal JSON document and replace the local hymn collection\n")
		fmt.Fprintf(os.Stderr, "with its contents. The existing database is backed up first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import the default English hymnal:\n")
		fmt.Fprintf(os.Stderr, "  %s import-hymns\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview a different hymnal without importing:\n")
		fmt.Fprintf(os.Stderr, "  %s import-hymns -url https://example.org/swahili.json -dry-run\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ImportHymnsCommand) Run() error {
	fmt.Println("Hymnal Import")
	fmt.Println("=============")

	if cmd.DryRun {
		fmt.Printf("%s No changes will be made\n\n", yellow("DRY RUN MODE:"))
	}

	fmt.Printf("Downloading hymnal from %s ...\n", cmd.URL)

	doc, err := hymnals.NewClient().Download(context.Background(), cmd.URL)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	fmt.Printf("%s %q (%s): %d hymns\n", green("Downloaded"), doc.Title, doc.Language, len(doc.Hymns))

	if cmd.Verbose {
		for _, h := range doc.Hymns {
			fmt.Printf("  %4d. %s\n", int(h.Number), h.Title)
		}
	}

	if cmd.DryRun {
		fmt.Println("\nDry run complete. Use without -dry-run to import.")
		return nil
	}

	fmt.Printf("\n%s This replaces ALL hymns in %s\n", yellow("Warning:"), cmd.DatabasePath)
	if !cmd.Yes && !confirm("Continue?") {
		fmt.Println("Import cancelled.")
		return nil
	}

	db, err := database.New(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Safety copy of the current database before the destructive import.
	backupPath, err := db.Backup(defaultBackupDir(cmd.DatabasePath))
	if err != nil {
		return fmt.Errorf("pre-import backup failed: %w", err)
	}
	fmt.Printf("%s Existing database backed up to %s\n", green("✓"), backupPath)

	result, err := hymnals.NewImporter(db).Run(doc)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Hymns imported: %s\n", green(result.Imported))
	if result.Skipped > 0 {
		fmt.Printf("Records skipped: %s\n", red(result.Skipped))
	}

	stats, err := db.Stats()
	if err == nil {
		fmt.Printf("Database now holds %d hymns in %d categories\n", stats.TotalHymns, stats.TotalCategories)
	}

	fmt.Printf("\n%s Import complete!\n", green("✓"))
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
