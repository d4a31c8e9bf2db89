package lock

import "context"

// Locker hands out exclusive, per-key critical sections. The returned unlock
// must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
