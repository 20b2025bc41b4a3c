package crew

import "context"

// Drafter turns a crew description into raw model text holding a JSON
// array of members.
type Drafter interface {
	Draft(ctx context.Context, description string) (string, error)
}

// DrafterFunc adapts a function to Drafter.
type DrafterFunc func(ctx context.Context, description string) (string, error)

// Draft calls f.
func (f DrafterFunc) Draft(ctx context.Context, description string) (string, error) {
	return f(ctx, description)
}
