// Package config provides configuration loading and defaults for codelife.
package config

// DefaultScanPaths are the default root directories to scan for projects.
var DefaultScanPaths = []string{"~/code"}

// DefaultConfigDir is the default location for codelife configuration.
const DefaultConfigDir = "~/.config/codelife"

// DefaultDBName is the filename for the run-history SQLite database.
const DefaultDBName = "codelife.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultIncludeHidden controls whether dot-prefixed files and directories
// are counted by default.
const DefaultIncludeHidden = false

// DefaultMergeSimilar controls whether similarly named files are merged
// by default.
const DefaultMergeSimilar = false

// DefaultExport holds the default report export preferences.
var DefaultExport = Export{
	Markdown: true,
	JSON:     true,
	Dir:      "report",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
