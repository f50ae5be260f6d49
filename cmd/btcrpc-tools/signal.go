// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

// interruptSignals defines the default signals to catch in order to stop
// long running commands.
var interruptSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// interruptContext returns a context that is canceled when one of
// interruptSignals is received. Repeated signals are only logged so the user
// knows the shutdown is in progress. log is read when a signal arrives, after
// the configuration has been loaded.
func interruptContext(parent context.Context, log *zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	interruptChannel := make(chan os.Signal, 1)
	signal.Notify(interruptChannel, interruptSignals...)

	go func() {
		select {
		case sig := <-interruptChannel:
			log.Info().Msg("Received signal " + sig.String() + ". Shutting down...")
			cancel()
		case <-ctx.Done():
			signal.Stop(interruptChannel)
			return
		}

		for {
			select {
			case sig := <-interruptChannel:
				log.Info().Msg("Received signal " + sig.String() + ". Already shutting down...")
			case <-parent.Done():
				signal.Stop(interruptChannel)
				return
			}
		}
	}()

	return ctx, cancel
}
