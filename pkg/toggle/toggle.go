package toggle

import (
	"context"

	"VidTube.com/pkg/lock"
	"github.com/pkg/errors"
)

// State is the outcome of a toggle.
type State int

const (
	Added State = iota + 1
	Removed
)

func (s State) String() string {
	switch s {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Ops are the two storage primitives a toggle is built from. Remove must
// delete by the full composite identity and report whether a record existed;
// Create must be a no-op when the record is already there.
type Ops struct {
	Remove func(ctx context.Context) (bool, error)
	Create func(ctx context.Context) error
}

// Toggle flips the existence of the record identified by key. The whole
// remove-or-create runs under the key's lock, so two toggles on the same key
// always alternate instead of both seeing "absent".
func Toggle(ctx context.Context, locker lock.Locker, key string, ops Ops) (State, error) {
	unlock, err := locker.Lock(ctx, key)
	if err != nil {
		return 0, err
	}
	defer unlock()

	removed, err := ops.Remove(ctx)
	if err != nil {
		return 0, errors.WithMessagef(err, "toggle %s: remove", key)
	}
	if removed {
		return Removed, nil
	}
	if err := ops.Create(ctx); err != nil {
		return 0, errors.WithMessagef(err, "toggle %s: create", key)
	}
	return Added, nil
}
