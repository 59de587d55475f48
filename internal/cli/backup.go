package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/christinsong/hymnal/internal/config"
	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/database/settings"
	"github.com/christinsong/hymnal/internal/scheduler"
	"github.com/christinsong/hymnal/internal/settingsstore"
)

// BackupCommand copies the database to a timestamped file in the backup
// directory.
type BackupCommand struct {
	DatabasePath string
	OutputDir    string
	Auto         bool
}

func NewBackupCommand() *BackupCommand {
	return &BackupCommand{}
}

func (cmd *BackupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the hymnal database file")
	fs.StringVar(&cmd.OutputDir, "output", cfg.Backup.Dir, "Directory to write the backup into")
	fs.BoolVar(&cmd.Auto, "auto", false, "Only back up when the auto-backup settings say one is due")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s backup [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a timestamped copy of the hymnal database. With -auto the\n")
		fmt.Fprintf(os.Stderr, "auto_backup and backup_frequency settings decide whether one is due,\n")
		fmt.Fprintf(os.Stderr, "so the command is safe to run from an OS task scheduler.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *BackupCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database not found: %s", cmd.DatabasePath)
	}

	db, err := database.New(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if cmd.Auto {
		store := settingsstore.New(settings.NewRepository(db.DB))
		path, err := scheduler.NewAutoBackup(db, store, cmd.OutputDir).RunIfDue()
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Println("No backup due.")
			return nil
		}
		fmt.Printf("%s Backup written to %s\n", green("✓"), path)
		return nil
	}

	path, err := db.Backup(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("%s Backup written to %s\n", green("✓"), path)
	return nil
}

// defaultBackupDir places backups next to the database file so a -db
// override keeps database and backups together.
func defaultBackupDir(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), config.BackupDirName)
}
