// Package main is the entry point for dirwatcher.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/dirwatcher/cmd/dirwatcher/commands"
	"go.trai.ch/dirwatcher/internal/app"
	"go.trai.ch/dirwatcher/internal/core/domain"
	_ "go.trai.ch/dirwatcher/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

// run executes the CLI. Operator signals are handled by the watch session
// itself so that the stop message can name the signal.
func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Fatal cycle errors were already logged by the scheduler.
		if errors.Is(err, domain.ErrFatalCycle) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
