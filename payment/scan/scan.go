// Package scan covers the QR scan-to-pay flow: the scan session capability and
// the fundmate payment URI format.
package scan

import (
	"context"
)

// Session yields the decoded contents of at most one code per scan session.
// The second return is false once the session is exhausted or ctx is done.
type Session interface {
	Next(ctx context.Context) (string, bool)
}

// StaticSession yields a single pre-decoded code. Stands in for a camera
// capture session in tests and the demo server.
type StaticSession struct {
	code string
	used bool
}

func NewStaticSession(code string) *StaticSession {
	return &StaticSession{code: code}
}

func (s *StaticSession) Next(ctx context.Context) (string, bool) {
	if s.used || s.code == "" {
		return "", false
	}
	select {
	case <-ctx.Done():
		return "", false
	default:
	}
	s.used = true
	return s.code, true
}
