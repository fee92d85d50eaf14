package alert

import "context"

// Repository holds the per-session alert state. Alerts themselves are always
// derived from products; only ids are stored here.
type Repository interface {
	Resolve(ctx context.Context, ids ...string) error
	ResolvedIDs(ctx context.Context) (map[string]bool, error)
	ToggleSnooze(ctx context.Context, id string) (bool, error)
	SnoozedIDs(ctx context.Context) (map[string]bool, error)
}
