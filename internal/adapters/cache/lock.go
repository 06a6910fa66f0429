package cache

import (
	"context"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/zerr"
)

// lockRetryInterval is the interval between attempts to acquire the cache write lock.
const lockRetryInterval = 50 * time.Millisecond

// acquireLock takes an exclusive lock on lockPath, retrying until ctx is done.
func acquireLock(ctx context.Context, lockPath string) (*flock.Flock, error) {
	fl := flock.New(lockPath)

	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to acquire cache lock"), "path", lockPath)
	}
	if !locked {
		if ctx.Err() != nil {
			return nil, zerr.With(zerr.Wrap(ctx.Err(), "failed to acquire cache lock"), "path", lockPath)
		}
		return nil, zerr.With(zerr.New("cache lock not acquired"), "path", lockPath)
	}
	return fl, nil
}

// releaseLock closes the lock file. The file stays on disk so a concurrent
// holder's lock is never invalidated by its removal.
func releaseLock(fl *flock.Flock) error {
	if fl == nil {
		return nil
	}
	if err := fl.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to release cache lock"), "path", fl.Path())
	}
	return nil
}
