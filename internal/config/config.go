// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
	"github.com/spf13/viper"
)

var (
	ErrAPIURLRequired = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid  = errors.New("environment variable API_URL must be a valid URL")
	ErrRangePolicy    = errors.New("DATE_RANGE_POLICY must be one of: error, empty")
)

// Config is the configuration of the backend.
type Config struct {
	URL              *url.URL // Base URL the API is reachable at, used for links
	DBPath           string   // Path of the SQLite database file
	Port             string
	GinMode          string
	LogFormat        string
	CORSAllowOrigins []string // Empty disables CORS handling
	EnablePprof      bool
	Validation       validation.Options
	Money            types.MoneyFormat
}

// Load returns the configuration from environment variables.
//
// Every call reads the environment again.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_PATH", "data/ledger.db")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("VALIDATION_REJECT_FUTURE_DATES", false)
	v.SetDefault("DATE_RANGE_POLICY", string(validation.RangePolicyError))
	v.SetDefault("CURRENCY", "USD")
	v.SetDefault("CURRENCY_LOCALE", "en-US")

	if !v.IsSet("API_URL") || v.GetString("API_URL") == "" {
		return Config{}, ErrAPIURLRequired
	}

	u, err := url.Parse(v.GetString("API_URL"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, ErrAPIURLInvalid
	}

	// Links are built by appending paths
	u.Path = strings.TrimSuffix(u.Path, "/")

	policy := validation.RangePolicy(v.GetString("DATE_RANGE_POLICY"))
	if policy != validation.RangePolicyError && policy != validation.RangePolicyEmpty {
		return Config{}, ErrRangePolicy
	}

	money, err := types.NewMoneyFormat(v.GetString("CURRENCY"), v.GetString("CURRENCY_LOCALE"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid currency configuration: %w", err)
	}

	return Config{
		URL:              u,
		DBPath:           v.GetString("DB_PATH"),
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		CORSAllowOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:      v.GetBool("ENABLE_PPROF"),
		Validation: validation.Options{
			RejectFutureDates: v.GetBool("VALIDATION_REJECT_FUTURE_DATES"),
			RangePolicy:       policy,
		},
		Money: money,
	}, nil
}
