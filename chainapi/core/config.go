package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ethernal-Tech/cardano-infrastructure/logger"
	apiCore "github.com/Ethernal-Tech/cosmos-chain-api/api/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/common"
	"github.com/Ethernal-Tech/cosmos-chain-api/telemetry"
)

const (
	// 10^MaxCoinDenomination must stay within the 256 bit range of chain integers
	MaxCoinDenomination = 36

	DefaultValidatorSetRefreshIntervalSec = 60
	DefaultUpstreamTimeoutSec             = 60
)

type AppSettings struct {
	Logger logger.LoggerConfig `json:"logger"`
}

type AppConfig struct {
	// URL to network's API server, e.g. https://rest.cosmos.directory/cosmoshub
	ChainAPIServer string `json:"chainApiServer"`
	// Network coin denomination: power of ten between the base unit and the display unit
	CoinDenomination uint32 `json:"coinDenomination"`
	// Address prefix for wallets: cosmos, osmo, celestia...
	HRPPrefix string `json:"hrpPrefix"`
	// zero means DefaultValidatorSetRefreshIntervalSec
	ValidatorSetRefreshIntervalSec uint64 `json:"validatorSetRefreshIntervalSec"`
	// zero means DefaultUpstreamTimeoutSec
	UpstreamTimeoutSec uint64 `json:"upstreamTimeoutSec"`

	APIConfig apiCore.APIConfig         `json:"api"`
	Settings  AppSettings               `json:"settings"`
	Telemetry telemetry.TelemetryConfig `json:"telemetry"`
}

// Validate checks every setting and reports all offending ones at once
func (c *AppConfig) Validate() error {
	var errs []error

	if !common.IsValidHTTPURL(c.ChainAPIServer) {
		errs = append(errs, fmt.Errorf("invalid chainApiServer %q: missing URL for the chain's API server (must start with http:// or https://)", c.ChainAPIServer))
	}

	if c.CoinDenomination == 0 || c.CoinDenomination > MaxCoinDenomination {
		errs = append(errs, fmt.Errorf("invalid coinDenomination %d: must be between 1 and %d",
			c.CoinDenomination, MaxCoinDenomination))
	}

	if c.HRPPrefix == "" {
		errs = append(errs, errors.New("missing hrpPrefix for wallet addresses"))
	}

	if c.APIConfig.Port == 0 {
		errs = append(errs, errors.New("invalid api.port: must be greater than zero"))
	}

	return errors.Join(errs...)
}

func (c *AppConfig) ValidatorSetRefreshInterval() time.Duration {
	if c.ValidatorSetRefreshIntervalSec == 0 {
		return DefaultValidatorSetRefreshIntervalSec * time.Second
	}

	return time.Duration(c.ValidatorSetRefreshIntervalSec) * time.Second
}

func (c *AppConfig) UpstreamTimeout() time.Duration {
	if c.UpstreamTimeoutSec == 0 {
		return DefaultUpstreamTimeoutSec * time.Second
	}

	return time.Duration(c.UpstreamTimeoutSec) * time.Second
}
