package validatorset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/Ethernal-Tech/cosmos-chain-api/telemetry"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"
)

const refreshFlightKey = "validator_set"

// Cache keeps the last reshaped bonded validator set and refreshes it from the chain
// once the refresh interval has elapsed since the previous successful refresh.
// A failed refresh keeps the previous set and does not move the refresh window,
// so the next request tries again. Concurrent stale requests share a single refresh
type Cache struct {
	client           core.ChainClient
	coinDenomination uint32
	hrpPrefix        string
	refreshInterval  time.Duration
	now              func() time.Time
	logger           hclog.Logger

	lock          sync.RWMutex
	validators    []core.Validator
	maxValidators uint32
	lastFetch     time.Time

	refreshGroup singleflight.Group
}

var _ core.ValidatorSetProvider = (*Cache)(nil)

func NewCache(
	client core.ChainClient, coinDenomination uint32, hrpPrefix string,
	refreshInterval time.Duration, logger hclog.Logger,
) *Cache {
	return &Cache{
		client:           client,
		coinDenomination: coinDenomination,
		hrpPrefix:        hrpPrefix,
		refreshInterval:  refreshInterval,
		now:              time.Now,
		logger:           logger,
	}
}

func (c *Cache) GetValidatorSet(ctx context.Context) (*core.ValidatorSet, error) {
	if validatorSet, ok := c.freshValidatorSet(); ok {
		telemetry.UpdateValidatorSetCacheHit()

		return validatorSet, nil
	}

	telemetry.UpdateValidatorSetCacheMiss()

	result, err, shared := c.refreshGroup.Do(refreshFlightKey, func() (interface{}, error) {
		// another flight may have finished between the freshness check and this one
		if validatorSet, ok := c.freshValidatorSet(); ok {
			return validatorSet, nil
		}

		// the refresh outlives a caller that gives up, waiting callers still get its result
		return c.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}

	validatorSet, _ := result.(*core.ValidatorSet)
	if shared {
		// every caller gets its own copy
		return copyValidatorSet(validatorSet), nil
	}

	return validatorSet, nil
}

func (c *Cache) freshValidatorSet() (*core.ValidatorSet, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.lastFetch.IsZero() || c.now().Sub(c.lastFetch) >= c.refreshInterval {
		return nil, false
	}

	return c.snapshot(), true
}

func (c *Cache) refresh(ctx context.Context) (*core.ValidatorSet, error) {
	startTime := time.Now()

	c.logger.Debug("Refreshing validator set")

	rawValidators, err := c.client.GetBondedValidators(ctx)
	if err != nil {
		return nil, c.refreshFailed(fmt.Errorf("failed to fetch bonded validators: %w", err))
	}

	validators, err := ReshapeValidators(rawValidators, c.coinDenomination, c.hrpPrefix)
	if err != nil {
		return nil, c.refreshFailed(fmt.Errorf("failed to reshape bonded validators: %w", err))
	}

	stakingParams, err := c.client.GetStakingParams(ctx)
	if err != nil {
		return nil, c.refreshFailed(fmt.Errorf("failed to fetch staking params: %w", err))
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.validators = validators
	c.maxValidators = stakingParams.MaxValidators

	if fetchTime := c.now(); fetchTime.After(c.lastFetch) {
		c.lastFetch = fetchTime
	}

	telemetry.UpdateValidatorSetRefreshed(len(validators), stakingParams.MaxValidators, startTime)

	c.logger.Debug("Validator set refreshed",
		"bonded", len(validators), "max", stakingParams.MaxValidators, "lastFetch", c.lastFetch)

	return c.snapshot(), nil
}

func (c *Cache) refreshFailed(err error) error {
	telemetry.UpdateValidatorSetRefreshFailed()

	c.logger.Error("Failed to refresh validator set", "err", err)

	return err
}

// snapshot must be called with the lock held
func (c *Cache) snapshot() *core.ValidatorSet {
	return &core.ValidatorSet{
		BondedValidators: len(c.validators),
		MaxValidators:    c.maxValidators,
		Validators:       append([]core.Validator(nil), c.validators...),
	}
}

func copyValidatorSet(validatorSet *core.ValidatorSet) *core.ValidatorSet {
	if validatorSet == nil {
		return nil
	}

	return &core.ValidatorSet{
		BondedValidators: validatorSet.BondedValidators,
		MaxValidators:    validatorSet.MaxValidators,
		Validators:       append([]core.Validator(nil), validatorSet.Validators...),
	}
}
