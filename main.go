package main

import (
	"github.com/Ethernal-Tech/cosmos-chain-api/cli"
)

func main() {
	cli.NewRootCommand().Execute()
}
