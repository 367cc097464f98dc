package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		// If the directory doesn't exist, create it
		return os.MkdirAll(dirPath, os.ModePerm)
	}

	return nil
}

func LoadJSON[TReturn any](path string) (*TReturn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v. error: %w", path, err)
	}

	defer f.Close()

	var value TReturn

	decoder := json.NewDecoder(f)
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to decode %v. error: %w", path, err)
	}

	return &value, nil
}

func SaveJSON(filePath string, value any) error {
	if err := CreateDirectoryIfNotExists(filepath.Dir(filePath)); err != nil {
		return fmt.Errorf("failed to create directory for %v. error: %w", filePath, err)
	}

	bytes, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal %v. error: %w", filePath, err)
	}

	if err := os.WriteFile(filePath, bytes, 0600); err != nil {
		return fmt.Errorf("failed to write %v. error: %w", filePath, err)
	}

	return nil
}

// Loads config from defined path or from root
// Prefix defined as: (prefix)_config.json
func LoadConfig[TReturn any](configPath string, configPrefix string) (*TReturn, error) {
	if configPath == "" {
		ex, err := os.Executable()
		if err != nil {
			return nil, err
		}

		if strings.TrimSpace(configPrefix) != "" {
			configPath = path.Join(filepath.Dir(ex), strings.Join([]string{configPrefix, "config.json"}, "_"))
		} else {
			configPath = path.Join(filepath.Dir(ex), "config.json")
		}
	}

	return LoadJSON[TReturn](configPath)
}
