package main

import (
	"fmt"
	"os"

	"github.com/wormhole-foundation/vaa/cmd/vaa"
)

func main() {
	rootCmd := vaa.BuildVAACmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
