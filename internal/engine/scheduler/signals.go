package scheduler

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// DefaultSignals are the operator signals that stop a watch session.
var DefaultSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// ListenForSignals requests stop when one of sigs arrives. It returns after
// the first signal or when ctx is done, whichever comes first. With no sigs
// it listens for DefaultSignals.
func ListenForSignals(ctx context.Context, stop *StopSignal, sigs ...os.Signal) {
	if len(sigs) == 0 {
		sigs = DefaultSignals
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	defer signal.Stop(ch)

	listen(ctx, stop, ch)
}

func listen(ctx context.Context, stop *StopSignal, ch <-chan os.Signal) {
	select {
	case sig := <-ch:
		stop.Request(SignalName(sig))
	case <-ctx.Done():
	}
}

// SignalName returns the conventional name of sig, e.g. "SIGINT".
func SignalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return strings.ToUpper(sig.String())
	}
}
