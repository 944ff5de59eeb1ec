package config

import (
	"fmt"

	"decorquote/models"

	"github.com/spf13/viper"
)

// CatalogConfig is the default add-on catalog plus an optional preset selection
// used by the terminal front end.
type CatalogConfig struct {
	Addons    []models.AddOn    `mapstructure:"addons"`
	Selection *models.Selection `mapstructure:"selection"`
}

// DefaultAddons returns a copy of the configured catalog.
func DefaultAddons() []models.AddOn {
	out := make([]models.AddOn, len(AppConfig.Catalog.Addons))
	copy(out, AppConfig.Catalog.Addons)
	return out
}

// LoadCatalogFile reads a catalog from a standalone yaml or json file.
func LoadCatalogFile(path string) (CatalogConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return CatalogConfig{}, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var c CatalogConfig
	if err := v.UnmarshalKey("catalog", &c); err != nil {
		return CatalogConfig{}, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if len(c.Addons) == 0 && c.Selection == nil {
		// Also accept files without the top-level "catalog" key.
		if err := v.Unmarshal(&c); err != nil {
			return CatalogConfig{}, fmt.Errorf("unmarshal catalog: %w", err)
		}
	}
	return c, nil
}
