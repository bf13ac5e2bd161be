package service

import "time"

// Clock supplies the current time. Reconciliation stamps Meta timestamps
// through this interface so that load cycles are deterministic under test.
type Clock interface {
	Now() time.Time
}
