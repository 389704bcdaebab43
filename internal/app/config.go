package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl or yaml files
	OutPath    string // resolved plan destination, "" means stdout

	LogFormat string
	LogLevel  string

	// SubjectCounts supplies externally-enumerated subject counts for
	// groups configured with number_of_subjects = 0, keyed
	// "<cluster>/<group>".
	SubjectCounts map[string]int64
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
