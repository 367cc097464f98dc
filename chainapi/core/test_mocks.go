package core

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ChainClientMock struct {
	mock.Mock
}

var _ ChainClient = (*ChainClientMock)(nil)

// GetLatestBlockHeight implements ChainClient.
func (m *ChainClientMock) GetLatestBlockHeight(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)

	return args.Get(0).(uint64), args.Error(1) //nolint:forcetypeassert
}

// GetBondedValidators implements ChainClient.
func (m *ChainClientMock) GetBondedValidators(ctx context.Context) ([]ChainValidator, error) {
	args := m.Called(ctx)
	if arg0 := args.Get(0); arg0 != nil {
		return arg0.([]ChainValidator), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}

// GetStakingParams implements ChainClient.
func (m *ChainClientMock) GetStakingParams(ctx context.Context) (ChainStakingParams, error) {
	args := m.Called(ctx)

	return args.Get(0).(ChainStakingParams), args.Error(1) //nolint:forcetypeassert
}

// GetBalances implements ChainClient.
func (m *ChainClientMock) GetBalances(ctx context.Context, address string) ([]ChainCoin, error) {
	args := m.Called(ctx, address)
	if arg0 := args.Get(0); arg0 != nil {
		return arg0.([]ChainCoin), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}

// GetDelegations implements ChainClient.
func (m *ChainClientMock) GetDelegations(ctx context.Context, address string) ([]ChainDelegationResponse, error) {
	args := m.Called(ctx, address)
	if arg0 := args.Get(0); arg0 != nil {
		return arg0.([]ChainDelegationResponse), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}

// GetRewards implements ChainClient.
func (m *ChainClientMock) GetRewards(ctx context.Context, address string) (*ChainRewardsResponse, error) {
	args := m.Called(ctx, address)
	if arg0 := args.Get(0); arg0 != nil {
		return arg0.(*ChainRewardsResponse), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}

// GetValidatorDelegatorsCount implements ChainClient.
func (m *ChainClientMock) GetValidatorDelegatorsCount(ctx context.Context, valoperAddress string) (uint64, error) {
	args := m.Called(ctx, valoperAddress)

	return args.Get(0).(uint64), args.Error(1) //nolint:forcetypeassert
}

type ValidatorSetProviderMock struct {
	mock.Mock
}

var _ ValidatorSetProvider = (*ValidatorSetProviderMock)(nil)

// GetValidatorSet implements ValidatorSetProvider.
func (m *ValidatorSetProviderMock) GetValidatorSet(ctx context.Context) (*ValidatorSet, error) {
	args := m.Called(ctx)
	if arg0 := args.Get(0); arg0 != nil {
		return arg0.(*ValidatorSet), args.Error(1) //nolint:forcetypeassert
	}

	return nil, args.Error(1)
}
