package utils

import (
	"fmt"
	"strings"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	chainTimeLayout       = "2006-01-02T15:04:05"
	commissionTimeLayout  = "02.01.2006 15:04:05"
	commissionTimeZoneOff = 3 * 60 * 60
	percentMultiplier     = 100
)

var commissionTimeZone = time.FixedZone("UTC+3", commissionTimeZoneOff)

// OwnerAddressFromValoper re-encodes the payload of a validator operator address with the account prefix
func OwnerAddressFromValoper(valoperAddress string, hrpPrefix string) (string, error) {
	_, data, err := bech32.Decode(valoperAddress)
	if err != nil {
		return "", fmt.Errorf("failed to decode operator address %s: %w", valoperAddress, err)
	}

	address, err := bech32.Encode(hrpPrefix, data)
	if err != nil {
		return "", fmt.Errorf("failed to encode address with prefix %s: %w", hrpPrefix, err)
	}

	return address, nil
}

// DenominationDivisor returns 10^coinDenomination
func DenominationDivisor(coinDenomination uint32) sdkmath.Int {
	return sdkmath.NewIntWithDecimal(1, int(coinDenomination))
}

// ConvertTokens returns floor(amount / 10^coinDenomination)
func ConvertTokens(amount string, coinDenomination uint32) (int64, error) {
	value, ok := sdkmath.NewIntFromString(amount)
	if !ok {
		return 0, fmt.Errorf("invalid token amount: %q", amount)
	}

	if value.IsNegative() {
		return 0, fmt.Errorf("negative token amount: %q", amount)
	}

	converted := value.Quo(DenominationDivisor(coinDenomination))
	if !converted.IsInt64() {
		return 0, fmt.Errorf("token amount out of range: %q", amount)
	}

	return converted.Int64(), nil
}

// AmountToFloat returns amount / 10^coinDenomination. amount may be an integer or a decimal string,
// when truncate is set the fractional part of amount is dropped before dividing
func AmountToFloat(amount string, coinDenomination uint32, truncate bool) (float64, error) {
	value, err := sdkmath.LegacyNewDecFromStr(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	if truncate {
		value = sdkmath.LegacyNewDecFromInt(value.TruncateInt())
	}

	result, err := value.QuoInt(DenominationDivisor(coinDenomination)).Float64()
	if err != nil {
		return 0, fmt.Errorf("amount %q can not be represented as float: %w", amount, err)
	}

	return result, nil
}

// ConvertCommissionRate turns a fractional rate ("0.05") into an integer percentage (5), truncating
func ConvertCommissionRate(rate string) (int64, error) {
	value, err := sdkmath.LegacyNewDecFromStr(rate)
	if err != nil {
		return 0, fmt.Errorf("invalid commission rate %q: %w", rate, err)
	}

	percentage := value.MulInt64(percentMultiplier).TruncateInt()
	if !percentage.IsInt64() {
		return 0, fmt.Errorf("commission rate out of range: %q", rate)
	}

	return percentage.Int64(), nil
}

// FormatCommissionTime converts a chain timestamp (UTC, with or without fractional seconds)
// into "DD.MM.YYYY HH:MM:SS" at UTC+3
func FormatCommissionTime(updateTime string) (string, error) {
	value, _, _ := strings.Cut(updateTime, ".")
	value = strings.TrimSuffix(value, "Z")

	parsed, err := time.ParseInLocation(chainTimeLayout, value, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid commission update time %q: %w", updateTime, err)
	}

	return parsed.In(commissionTimeZone).Format(commissionTimeLayout), nil
}
