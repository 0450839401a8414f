package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-generator/internal/config"
	"github.com/jonathan/cv-generator/internal/templates"
	"github.com/jonathan/cv-generator/internal/types"
)

// loadCLIConfig resolves the effective configuration from the optional
// config file plus root flags.
func loadCLIConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if rootConfigFile != "" {
		loaded, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if rootStorageDir != "" {
		cfg.StorageDir = rootStorageDir
	}
	if rootVerbose {
		cfg.Verbose = true
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens the template catalogue in the configured storage directory.
func openStore(cfg *config.Config) (*templates.Store, error) {
	storage, err := templates.NewFileStorage(cfg.StorageDir)
	if err != nil {
		return nil, err
	}
	return templates.NewStore(storage), nil
}

// loadCVData reads the CV content JSON file.
func loadCVData(path string) (*types.CVData, error) {
	if path == "" {
		return nil, fmt.Errorf("no CV data file given: use --data or set data_file in the config")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV data file: %w", err)
	}
	var data types.CVData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to parse CV data JSON: %w", err)
	}
	return &data, nil
}

// loadSelection reads a SelectionSet JSON file, or selects everything when
// no file is given.
func loadSelection(path string, data *types.CVData) (types.SelectionSet, error) {
	if path == "" {
		return types.SelectAll(data), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}
	var selection types.SelectionSet
	if err := json.Unmarshal(content, &selection); err != nil {
		return nil, fmt.Errorf("failed to parse selection JSON: %w", err)
	}
	return selection, nil
}
