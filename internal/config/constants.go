package config

const (
	// AppName is used for the data directory and window titles.
	AppName = "ChristInSong"

	// Version of the application and its schema.
	Version = "1.0.0"

	// DatabaseFilename is the fixed name of the SQLite file under the data dir.
	DatabaseFilename = "christ_in_song.db"

	// BackupDirName holds timestamped database copies under the data dir.
	BackupDirName = "backups"

	// LogDirName holds the application log under the data dir.
	LogDirName = "logs"

	// LogFilename is the file the fatal-error dialog points users at.
	LogFilename = "christ_in_song.log"

	// DefaultHymnalURL is the remote JSON document the importer downloads.
	DefaultHymnalURL = "https://raw.githubusercontent.com/TinasheMzondiwa/cis-hymnals/main/english.json"
)
