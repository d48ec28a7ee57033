// Package config reads the encoder's settings from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trufnetwork/poa-extradata/internal/extradata"
)

// MinerAddressKey is the environment variable holding the signer address.
const MinerAddressKey = "MINER_ADDRESS"

type MinerEnvironmentVariables struct {
	// optionally prefixed with "0x"
	MinerAddress string `env:"MINER_ADDRESS,required,notEmpty"`
}

// Load reads the miner configuration from the process environment.
func Load() (MinerEnvironmentVariables, error) {
	return load(env.Options{})
}

// LoadFrom reads the miner configuration from the given variables instead of the
// process environment.
func LoadFrom(environment map[string]string) (MinerEnvironmentVariables, error) {
	return load(env.Options{Environment: environment})
}

func load(opts env.Options) (MinerEnvironmentVariables, error) {
	var cfg MinerEnvironmentVariables
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		// the only field is required and non-empty, so any failure means it is absent
		return MinerEnvironmentVariables{}, &ConfigurationError{
			Key: MinerAddressKey,
			Err: ErrMissingValue,
		}
	}

	if err := ValidateAddress(MinerAddressKey, cfg.MinerAddress); err != nil {
		return MinerEnvironmentVariables{}, err
	}
	return cfg, nil
}

// ValidateAddress checks that value, once its optional "0x" prefix is removed, is a
// non-empty whole number of hex encoded bytes. Addresses that are valid hex but not
// 20 bytes long are accepted with a warning.
func ValidateAddress(key, value string) error {
	normalized := extradata.Normalize(value)
	if normalized == "" {
		return &ConfigurationError{Key: key, Value: value, Err: ErrMissingValue}
	}

	raw, err := hexutil.Decode("0x" + normalized)
	if err != nil {
		return &ConfigurationError{
			Key:   key,
			Value: value,
			Err:   fmt.Errorf("%w: %v", ErrInvalidHex, err),
		}
	}

	if len(raw) != common.AddressLength {
		zap.L().Warn("signer address is not 20 bytes long",
			zap.String("key", key),
			zap.String("value", value),
			zap.Int("bytes", len(raw)))
	}
	return nil
}

// ValidateAddresses validates every value and returns the first failure,
// wrapped with its position.
func ValidateAddresses(key string, values []string) error {
	for i, v := range values {
		if err := ValidateAddress(key, v); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
	}
	return nil
}
