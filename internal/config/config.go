package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level codelife configuration.
type Config struct {
	ScanPaths     []string `mapstructure:"scan_paths"`
	IncludeHidden bool     `mapstructure:"include_hidden"`
	MergeSimilar  bool     `mapstructure:"merge_similar"`
	Export        Export   `mapstructure:"export"`
	Output        Output   `mapstructure:"output"`
}

// Export defines report export preferences.
type Export struct {
	Markdown bool   `mapstructure:"markdown"`
	JSON     bool   `mapstructure:"json"`
	Dir      string `mapstructure:"dir"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("scan_paths", DefaultScanPaths)
	v.SetDefault("include_hidden", DefaultIncludeHidden)
	v.SetDefault("merge_similar", DefaultMergeSimilar)
	v.SetDefault("export.markdown", DefaultExport.Markdown)
	v.SetDefault("export.json", DefaultExport.JSON)
	v.SetDefault("export.dir", DefaultExport.Dir)
	v.SetDefault("output.color", DefaultOutput.Color)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Expand paths.
	cfg.Export.Dir = expandPath(cfg.Export.Dir)
	for i, p := range cfg.ScanPaths {
		cfg.ScanPaths[i] = expandPath(p)
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite run-history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
