package telemetry

import (
	"time"

	"github.com/armon/go-metrics"
)

const (
	validatorSetMetricsPrefix = "validator_set"
	upstreamMetricsPrefix     = "upstream"
	chainMetricsPrefix        = "chain"
)

func UpdateValidatorSetCacheHit() {
	metrics.IncrCounter([]string{validatorSetMetricsPrefix, "cache_hit"}, 1)
}

func UpdateValidatorSetCacheMiss() {
	metrics.IncrCounter([]string{validatorSetMetricsPrefix, "cache_miss"}, 1)
}

func UpdateValidatorSetRefreshFailed() {
	metrics.IncrCounter([]string{validatorSetMetricsPrefix, "refresh_failed"}, 1)
}

func UpdateValidatorSetRefreshed(bondedValidators int, maxValidators uint32, startTime time.Time) {
	metrics.MeasureSince([]string{validatorSetMetricsPrefix, "refresh_duration"}, startTime)
	metrics.SetGauge([]string{validatorSetMetricsPrefix, "bonded_validators"}, float32(bondedValidators))
	metrics.SetGauge([]string{validatorSetMetricsPrefix, "max_validators"}, float32(maxValidators))
}

func UpdateUpstreamRequest(operation string, startTime time.Time) {
	metrics.IncrCounter([]string{upstreamMetricsPrefix, "requests", operation}, 1)
	metrics.MeasureSince([]string{upstreamMetricsPrefix, "request_duration", operation}, startTime)
}

func UpdateUpstreamRequestFailed(operation string) {
	metrics.IncrCounter([]string{upstreamMetricsPrefix, "requests_failed", operation}, 1)
}

func UpdateChainBlockHeight(height uint64) {
	metrics.SetGauge([]string{chainMetricsPrefix, "block_height"}, float32(height))
}

func UpdateChainNodeAvailable(available bool) {
	value := float32(0)
	if available {
		value = 1
	}

	metrics.SetGauge([]string{chainMetricsPrefix, "node_available"}, value)
}
