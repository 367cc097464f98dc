package core

import (
	"context"
)

// ChainClient reads from the chain's REST api. Every call is a single blocking GET without retries
type ChainClient interface {
	GetLatestBlockHeight(ctx context.Context) (uint64, error)
	GetBondedValidators(ctx context.Context) ([]ChainValidator, error)
	GetStakingParams(ctx context.Context) (ChainStakingParams, error)
	GetBalances(ctx context.Context, address string) ([]ChainCoin, error)
	GetDelegations(ctx context.Context, address string) ([]ChainDelegationResponse, error)
	GetRewards(ctx context.Context, address string) (*ChainRewardsResponse, error)
	GetValidatorDelegatorsCount(ctx context.Context, valoperAddress string) (uint64, error)
}

type ValidatorSetProvider interface {
	GetValidatorSet(ctx context.Context) (*ValidatorSet, error)
}

type ChainAPI interface {
	Start() error
	Stop() error
}
