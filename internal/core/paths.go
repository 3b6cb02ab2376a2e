package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	DataDir     string
	ConfigFile  string
	LogFile     string
	CatalogFile string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}

		dataDir := filepath.Join(homeDir, ".stocksuggest")
		defaultPaths = &Paths{
			DataDir:     dataDir,
			ConfigFile:  filepath.Join(dataDir, "config.yaml"),
			LogFile:     filepath.Join(dataDir, "stocksuggest.log"),
			CatalogFile: filepath.Join(dataDir, "catalog.db"),
		}

		err = os.MkdirAll(defaultPaths.DataDir, 0755)
		if err != nil {
			panic(err)
		}
	}
}

func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

func CatalogFile() string {
	ensureDefaultPaths()
	return defaultPaths.CatalogFile
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
