package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/espalier/pkg/domain"
)

// NewAuditHooks returns hooks that log every transition on logger: entries
// and exits at Info, failed transitions at Error.
func NewAuditHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			logger.InfoContext(ctx, "state enter",
				"machine", e.MachineID,
				"state", e.StateID,
				"previous", e.Previous,
			)
		},
		OnStateLeave: func(ctx context.Context, e *domain.StateEvent) {
			logger.InfoContext(ctx, "state leave",
				"machine", e.MachineID,
				"state", e.StateID,
				"next", e.Next,
			)
		},
		OnTransitionError: func(ctx context.Context, e *domain.StateEvent) {
			logger.ErrorContext(ctx, "transition failed",
				"machine", e.MachineID,
				"target", e.StateID,
				"previous", e.Previous,
				"err", e.Err,
			)
		},
	}
}

// Combine merges hook sets into one; for each event every non-nil callback
// runs, in argument order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			for _, s := range sets {
				if s.OnStateEnter != nil {
					s.OnStateEnter(ctx, e)
				}
			}
		},
		OnStateLeave: func(ctx context.Context, e *domain.StateEvent) {
			for _, s := range sets {
				if s.OnStateLeave != nil {
					s.OnStateLeave(ctx, e)
				}
			}
		},
		OnTransitionError: func(ctx context.Context, e *domain.StateEvent) {
			for _, s := range sets {
				if s.OnTransitionError != nil {
					s.OnTransitionError(ctx, e)
				}
			}
		},
	}
}
