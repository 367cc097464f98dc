package cliversion

import (
	"fmt"

	"github.com/Ethernal-Tech/cosmos-chain-api/common"
)

type versionCmdResult struct {
	Commit    string
	Branch    string
	BuildTime string
}

func (r *versionCmdResult) GetOutput() string {
	return common.FormatKV([]string{
		fmt.Sprintf("Commit|%s", r.Commit),
		fmt.Sprintf("Branch|%s", r.Branch),
		fmt.Sprintf("Build time|%s", r.BuildTime),
	})
}
