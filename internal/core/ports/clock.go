package ports

import "time"

// Clock abstracts wall-clock time for the scheduler.
//
//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	Now() time.Time
	// Sleep blocks for d. It is not interruptible.
	Sleep(d time.Duration)
}
