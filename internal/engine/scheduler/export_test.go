package scheduler

import (
	"context"
	"os"
)

// Listen exposes the signal select loop so tests can feed a channel directly.
func Listen(ctx context.Context, stop *StopSignal, ch <-chan os.Signal) {
	listen(ctx, stop, ch)
}

// Banner exposes the banner layout for testing.
var Banner = banner
