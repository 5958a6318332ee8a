// config.go: settings struct and functions to load and access the temple-go configuration.
package conf

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

//go:embed config.yaml
var configFiles embed.FS

// LogConfig contains settings for a rotating file log.
type LogConfig struct {
	Enabled bool   // true to enable this log
	Path    string // path to log file
}

// MainSettings contains general application settings.
type MainSettings struct {
	Name string    // name of the node
	Log  LogConfig // main log settings
}

// EphemerisSettings contains settings for the pre-computed ephemeris table.
type EphemerisSettings struct {
	TablePath   string // path to the daily longitude table CSV, empty to rely on the analytic model
	WindowStart string // first day covered when generating a table (YYYY-MM-DD)
	WindowEnd   string // last day covered when generating a table (YYYY-MM-DD)
}

// WebServerSettings contains settings for the HTTP API server.
type WebServerSettings struct {
	Enabled bool      // true to enable the HTTP server
	Port    string    // port to listen on
	Log     LogConfig // web server log settings
}

// SQLiteSettings contains settings for the SQLite database.
type SQLiteSettings struct {
	Enabled bool   // true to enable SQLite storage
	Path    string // path to the SQLite database file
}

// MySQLSettings contains settings for the MySQL database.
type MySQLSettings struct {
	Enabled  bool   // true to enable MySQL storage
	Username string // MySQL username
	Password string // MySQL password
	Database string // MySQL database name
	Host     string // MySQL host
	Port     string // MySQL port
}

// OutputSettings contains settings for chart persistence.
type OutputSettings struct {
	SQLite SQLiteSettings
	MySQL  MySQLSettings
}

// Settings contains all runtime settings for the application.
type Settings struct {
	Debug bool // true to enable debug mode

	Main      MainSettings
	Ephemeris EphemerisSettings
	WebServer WebServerSettings
	Output    OutputSettings
}

var (
	settingsInstance *Settings
	once             sync.Once
	settingsMutex    sync.RWMutex
)

// Load reads the configuration into the global settings instance.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper sets up viper with defaults and an optional on-disk config file.
func initViper() error {
	viper.SetConfigType("yaml")

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}
	viper.SetConfigName("config")

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !asConfigFileNotFound(err, &configFileNotFoundError) {
			return fmt.Errorf("fatal error reading config file: %w", err)
		}
		// No config file on disk, write the embedded default for next time.
		if writeErr := createDefaultConfig(configPaths[0]); writeErr != nil {
			// Not fatal, defaults are already set in viper.
			fmt.Fprintf(os.Stderr, "warning: unable to write default config: %v\n", writeErr)
		}
	}

	return nil
}

func asConfigFileNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	if e, ok := err.(viper.ConfigFileNotFoundError); ok {
		*target = e
		return true
	}
	return false
}

// createDefaultConfig writes the embedded default config.yaml to the given directory.
func createDefaultConfig(dir string) error {
	defaultConfig, err := fs.ReadFile(configFiles, "config.yaml")
	if err != nil {
		return fmt.Errorf("error reading embedded config: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), defaultConfig, 0o644)
}

// GetDefaultConfigPaths returns the paths where a config file is searched for,
// in priority order: current working directory, then the user config directory.
func GetDefaultConfigPaths() ([]string, error) {
	paths := []string{"."}
	userConfig, err := os.UserConfigDir()
	if err != nil {
		return paths, nil //nolint:nilerr // a missing user config dir is not fatal
	}
	return append(paths, filepath.Join(userConfig, "temple-go")), nil
}

// validateSettings performs basic sanity checks on loaded settings.
func validateSettings(settings *Settings) error {
	if settings.Output.SQLite.Enabled && settings.Output.MySQL.Enabled {
		return fmt.Errorf("only one of sqlite and mysql output may be enabled")
	}
	return nil
}

// Setting returns the global settings instance, loading it on first use.
func Setting() *Settings {
	once.Do(func() {
		if settingsInstance == nil {
			if _, err := Load(); err != nil {
				panic(fmt.Sprintf("error loading settings: %v", err))
			}
		}
	})
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}
