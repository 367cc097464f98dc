package clichainapi

import (
	"fmt"

	"github.com/Ethernal-Tech/cosmos-chain-api/common"
)

type CmdResult struct {
	port uint32
}

func (r CmdResult) GetOutput() string {
	return common.FormatKV([]string{
		fmt.Sprintf("Chain api stopped|port %d", r.port),
	})
}
