package server

import (
	"context"

	"github.com/preston-bernstein/game-deals-service/internal/health"
)

// Tracker defines the upstream health behavior needed by the server.
type Tracker interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() health.Status
}
