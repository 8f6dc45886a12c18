package commands

import (
	"github.com/2extndd/MRS-sub002/internal/api"
	"github.com/2extndd/MRS-sub002/internal/config"
)

// ConfigPath is bound to the root --config persistent flag.
var ConfigPath string

func loadConfig() (config.Config, error) {
	return config.Load(ConfigPath)
}

// newClient builds an API client from the effective config. One-shot
// commands run without a logger; failures surface on stderr instead.
func newClient() (*api.Client, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	return api.New(nil, cfg.BaseURL, cfg.Timeout), cfg, nil
}
