package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/christinsong/hymnal/internal/config"
	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/database/categories"
)

// StatsCommand prints collection statistics for the database.
type StatsCommand struct {
	DatabasePath string
	ByCategory   bool
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the hymnal database file")
	fs.BoolVar(&cmd.ByCategory, "categories", false, "Also show hymn counts per category")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show hymn, category, and favourite counts for the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	db, err := database.New(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := db.Stats()
	if err != nil {
		return fmt.Errorf("failed to collect statistics: %w", err)
	}

	fmt.Println("Database Statistics")
	fmt.Println("===================")
	fmt.Printf("Database:   %s\n", db.Path())
	fmt.Printf("Version:    %s\n", stats.DatabaseVersion)
	fmt.Printf("Size:       %.1f KiB\n", float64(stats.DatabaseSizeBytes)/1024)
	fmt.Printf("Hymns:      %d\n", stats.TotalHymns)
	fmt.Printf("Categories: %d\n", stats.TotalCategories)
	fmt.Printf("Favourites: %d\n", stats.TotalFavorites)

	if cmd.ByCategory {
		cats, err := categories.NewRepository(db.DB).GetAll()
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		fmt.Println("\nHymns per category:")
		for _, c := range cats {
			if c.HymnCount > 0 {
				fmt.Printf("  %-25s %d\n", c.Name, c.HymnCount)
			}
		}
	}

	return nil
}
