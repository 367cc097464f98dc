package utils

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/require"
)

func encodeTestAddress(t *testing.T, hrp string, payload []byte) string {
	t.Helper()

	data, err := bech32.ConvertBits(payload, 8, 5, true)
	require.NoError(t, err)

	address, err := bech32.Encode(hrp, data)
	require.NoError(t, err)

	return address
}

func TestOwnerAddressFromValoper(t *testing.T) {
	payload := bytes.Repeat([]byte{0x85, 0x2f, 0xf8, 0x4c, 0x7d}, 4)
	valoperAddress := encodeTestAddress(t, "cosmosvaloper", payload)

	t.Run("re-encodes with prefix", func(t *testing.T) {
		address, err := OwnerAddressFromValoper(valoperAddress, "cosmos")
		require.NoError(t, err)
		require.Equal(t, encodeTestAddress(t, "cosmos", payload), address)
	})

	t.Run("pure function", func(t *testing.T) {
		first, err := OwnerAddressFromValoper(valoperAddress, "cosmos")
		require.NoError(t, err)

		second, err := OwnerAddressFromValoper(valoperAddress, "cosmos")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("prefix change keeps payload", func(t *testing.T) {
		cosmosAddress, err := OwnerAddressFromValoper(valoperAddress, "cosmos")
		require.NoError(t, err)

		osmoAddress, err := OwnerAddressFromValoper(valoperAddress, "osmo")
		require.NoError(t, err)

		cosmosHrp, cosmosData, err := bech32.Decode(cosmosAddress)
		require.NoError(t, err)

		osmoHrp, osmoData, err := bech32.Decode(osmoAddress)
		require.NoError(t, err)

		require.Equal(t, "cosmos", cosmosHrp)
		require.Equal(t, "osmo", osmoHrp)
		require.Equal(t, cosmosData, osmoData)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := OwnerAddressFromValoper("cosmosvaloper1invalid", "cosmos")
		require.ErrorContains(t, err, "failed to decode operator address")
	})
}

func TestConvertTokens(t *testing.T) {
	value, err := ConvertTokens("1500000", 6)
	require.NoError(t, err)
	require.Equal(t, int64(1), value)

	value, err = ConvertTokens("999999", 6)
	require.NoError(t, err)
	require.Equal(t, int64(0), value)

	value, err = ConvertTokens("250000000000000000000000", 18)
	require.NoError(t, err)
	require.Equal(t, int64(250000), value)

	_, err = ConvertTokens("1.5", 6)
	require.ErrorContains(t, err, "invalid token amount")

	_, err = ConvertTokens("", 6)
	require.ErrorContains(t, err, "invalid token amount")

	_, err = ConvertTokens("-100", 1)
	require.ErrorContains(t, err, "negative token amount")
}

func TestAmountToFloat(t *testing.T) {
	value, err := AmountToFloat("1500000", 6, false)
	require.NoError(t, err)
	require.Equal(t, 1.5, value)

	value, err = AmountToFloat("1234567.890000000000000000", 6, true)
	require.NoError(t, err)
	require.Equal(t, 1.234567, value)

	value, err = AmountToFloat("1234567.890000000000000000", 6, false)
	require.NoError(t, err)
	require.InDelta(t, 1.23456789, value, 1e-12)

	_, err = AmountToFloat("abc", 6, false)
	require.ErrorContains(t, err, "invalid amount")
}

func TestConvertCommissionRate(t *testing.T) {
	cases := map[string]int64{
		"0.0500000000":         5,
		"0.1000000000":         10,
		"0.050000000000000000": 5,
		"1.000000000000000000": 100,
		"0.001":                0,
		"0.299":                29,
	}

	for rate, expected := range cases {
		value, err := ConvertCommissionRate(rate)
		require.NoError(t, err, rate)
		require.Equal(t, expected, value, rate)
	}

	_, err := ConvertCommissionRate("five percent")
	require.ErrorContains(t, err, "invalid commission rate")
}

func TestFormatCommissionTime(t *testing.T) {
	cases := map[string]string{
		"2024-01-01T00:00:00Z":        "01.01.2024 03:00:00",
		"2024-01-01T00:00:00.123456Z": "01.01.2024 03:00:00",
		"2024-01-01T00:00:00":         "01.01.2024 03:00:00",
		"2023-12-31T22:15:30.5Z":      "01.01.2024 01:15:30",
	}

	for input, expected := range cases {
		value, err := FormatCommissionTime(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, value, input)
	}

	_, err := FormatCommissionTime("01.01.2024")
	require.ErrorContains(t, err, "invalid commission update time")

	_, err = FormatCommissionTime("")
	require.Error(t, err)
}
