package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"

	"go.uber.org/fx"

	"github.com/polkiloo/smsrent/internal/config"
)

// Module provides the service and country catalog.
var Module = fx.Provide(newCatalog)

// DefaultServices lists the provider service codes offered to users.
var DefaultServices = map[string]string{
	"go":  "Google",
	"ni":  "Gojek",
	"wa":  "WhatsApp",
	"bnu": "Qpon",
	"tg":  "Telegram",
	"eh":  "Telegram 2.0",
	"ot":  "Any Other",
}

// DefaultCountries is used when no countries file is available.
var DefaultCountries = map[string]string{
	"6":  "Indonesia",
	"0":  "Russia",
	"3":  "China",
	"4":  "Philippines",
	"10": "Vietnam",
}

// Catalog resolves service and country codes to display names.
type Catalog struct {
	services  map[string]string
	countries map[string]string
}

// New builds a catalog from the supplied tables.
func New(services, countries map[string]string) *Catalog {
	return &Catalog{services: maps.Clone(services), countries: maps.Clone(countries)}
}

// Load reads countries from a JSON object file, falling back to
// DefaultCountries when the file does not exist.
func Load(path string, logger *slog.Logger) (*Catalog, error) {
	countries, err := readCountries(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("countries file not found, using fallback", slog.String("path", path))
		return New(DefaultServices, DefaultCountries), nil
	}
	if err != nil {
		return nil, err
	}
	return New(DefaultServices, countries), nil
}

func readCountries(path string) (map[string]string, error) {
	if path == "" {
		return nil, fs.ErrNotExist
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var countries map[string]string
	if err := json.Unmarshal(content, &countries); err != nil {
		return nil, fmt.Errorf("parse countries file %s: %w", path, err)
	}
	return countries, nil
}

type catalogParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newCatalog(p catalogParams) (*Catalog, error) {
	return Load(p.Config.CountriesFile, p.Logger)
}

// Services returns a copy of the service table.
func (c *Catalog) Services() map[string]string {
	return maps.Clone(c.services)
}

// Countries returns a copy of the country table.
func (c *Catalog) Countries() map[string]string {
	return maps.Clone(c.countries)
}

// ServiceName returns the display name of a service code.
func (c *Catalog) ServiceName(code string) (string, bool) {
	name, ok := c.services[code]
	return name, ok
}

// CountryName returns the display name of a country code.
func (c *Catalog) CountryName(code string) (string, bool) {
	name, ok := c.countries[code]
	return name, ok
}
