package cligenerateconfigs

import (
	"bytes"
	"fmt"

	"github.com/Ethernal-Tech/cosmos-chain-api/common"
)

type CmdResult struct {
	chainAPIConfigPath string
}

func (r CmdResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString(common.FormatKV(
		[]string{
			fmt.Sprintf("ChainAPI config|%s", r.chainAPIConfigPath),
		}))

	return buffer.String()
}
