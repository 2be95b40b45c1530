// bigcalc is a command line calculator for arbitrarily large integers.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/shabbyrobe/go-bigint/cmd/bigcalc/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		log := command.Logger()
		if log.Core().Enabled(zap.ErrorLevel) {
			log.Error("bigcalc failed", zap.Error(err))
		} else {
			// Flag errors happen before the logger is set up.
			fallback := zap.Must(zap.NewProduction())
			fallback.Error("bigcalc failed", zap.Error(err))
			_ = fallback.Sync()
		}
		_ = log.Sync()
		os.Exit(1)
	}
}
