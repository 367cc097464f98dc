package controllers

import (
	"errors"
	"fmt"
	"net/http"

	apiCore "github.com/Ethernal-Tech/cosmos-chain-api/api/core"
	apiUtils "github.com/Ethernal-Tech/cosmos-chain-api/api/utils"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/api/model/response"
	"github.com/Ethernal-Tech/cosmos-chain-api/chainapi/core"
	"github.com/hashicorp/go-hclog"
)

const valoperAddressQueryParam = "valoper_address"

type ValidatorsControllerImpl struct {
	validatorSetProvider core.ValidatorSetProvider
	chainClient          core.ChainClient
	logger               hclog.Logger
}

var _ apiCore.APIController = (*ValidatorsControllerImpl)(nil)

func NewValidatorsController(
	validatorSetProvider core.ValidatorSetProvider,
	chainClient core.ChainClient,
	logger hclog.Logger,
) *ValidatorsControllerImpl {
	return &ValidatorsControllerImpl{
		validatorSetProvider: validatorSetProvider,
		chainClient:          chainClient,
		logger:               logger,
	}
}

func (*ValidatorsControllerImpl) GetPathPrefix() string {
	return ""
}

func (c *ValidatorsControllerImpl) GetEndpoints() []*apiCore.APIEndpoint {
	return []*apiCore.APIEndpoint{
		{Path: "validators_info", Method: http.MethodGet, Handler: c.getValidatorsInfo},
		{Path: "delegators", Method: http.MethodGet, Handler: c.getDelegators},
	}
}

// @Summary Get current validator set
// @Description Returns the bonded validators sorted by stake (descending) and the maximum validator count.
// @Description The set is refreshed from the chain node at most once per refresh interval.
// @Tags Validators
// @Produce json
// @Success 200 {object} response.ValidatorsInfoResponse "OK"
// @Failure 502 {object} response.ErrorResponse "Chain node request failed"
// @Router /validators_info [get]
func (c *ValidatorsControllerImpl) getValidatorsInfo(w http.ResponseWriter, r *http.Request) {
	c.logger.Debug("getValidatorsInfo request", "url", r.URL)

	validatorSet, err := c.validatorSetProvider.GetValidatorSet(r.Context())
	if err != nil {
		apiUtils.WriteErrorResponse(
			w, r, http.StatusBadGateway,
			fmt.Errorf("get validator set: %w", err), c.logger)

		return
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, response.NewValidatorsInfoResponse(validatorSet), c.logger)
}

// @Summary Get the delegators amount of a validator
// @Tags Validators
// @Produce json
// @Param valoper_address query string true "Validator operator address"
// @Success 200 {object} response.DelegatorsResponse "OK"
// @Failure 400 {object} response.ErrorResponse "Missing valoper_address"
// @Failure 502 {object} response.ErrorResponse "Chain node request failed"
// @Router /delegators [get]
func (c *ValidatorsControllerImpl) getDelegators(w http.ResponseWriter, r *http.Request) {
	queryValues := r.URL.Query()
	c.logger.Debug("getDelegators request", "query values", queryValues, "url", r.URL)

	valoperAddress := queryValues.Get(valoperAddressQueryParam)
	if valoperAddress == "" {
		apiUtils.WriteErrorResponse(
			w, r, http.StatusBadRequest,
			errors.New("valoper_address missing from query"), c.logger)

		return
	}

	delegators, err := c.chainClient.GetValidatorDelegatorsCount(r.Context(), valoperAddress)
	if err != nil {
		apiUtils.WriteErrorResponse(
			w, r, http.StatusBadGateway,
			fmt.Errorf("get delegators of %s: %w", valoperAddress, err), c.logger)

		return
	}

	apiUtils.WriteResponse(w, r, http.StatusOK, response.NewDelegatorsResponse(delegators), c.logger)
}
