package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/inbound/cli"
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

func main() {
	if err := cli.Execute(); err != nil {
		// violations were already reported
		if !errors.Is(err, domain.ErrPolicyFailure) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
