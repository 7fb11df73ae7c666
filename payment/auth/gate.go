// Package auth defines the credential confirmation capability.
package auth

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by gates when no authentication mechanism can be
// reached. The engine treats it identically to a denial.
var ErrUnavailable = errors.New("authentication unavailable")

// Gate asks the user to confirm an operation. The reason string is shown on
// the confirmation prompt and must describe what is being approved.
type Gate interface {
	Authenticate(ctx context.Context, reason string) (bool, error)
}

// StaticGate answers every prompt with a fixed decision. The demo server uses
// an approving gate in place of device biometrics.
type StaticGate struct {
	Approve bool
}

func (g StaticGate) Authenticate(ctx context.Context, reason string) (bool, error) {
	return g.Approve, nil
}

var _ Gate = StaticGate{}
