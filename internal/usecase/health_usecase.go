package usecase

import (
	"context"
	"fmt"
)

// Pinger reports whether a backing service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	// Ready checks every dependency and returns their states.
	Ready(ctx context.Context) (map[string]string, error)
}

type healthUsecase struct {
	deps map[string]Pinger
}

// NewHealthUsecase takes the dependencies to probe by name. Nil pingers are
// skipped, which covers optional services that were not configured.
func NewHealthUsecase(deps map[string]Pinger) HealthUsecase {
	active := make(map[string]Pinger, len(deps))
	for name, p := range deps {
		if p != nil {
			active[name] = p
		}
	}
	return &healthUsecase{deps: active}
}

func (u *healthUsecase) Ready(ctx context.Context) (map[string]string, error) {
	status := make(map[string]string, len(u.deps))
	var firstErr error
	for name, p := range u.deps {
		if err := p.Ping(ctx); err != nil {
			status[name] = "down"
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", name, err)
			}
			continue
		}
		status[name] = "up"
	}
	return status, firstErr
}
