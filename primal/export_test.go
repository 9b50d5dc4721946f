package primal

import "time"

// SetClock installs a fake clock for timeout tests.
func SetClock(m *Module, clock func() time.Time) { m.clock = clock }
