package scheduler

import "github.com/pkg/errors"

var ErrSyncAlreadyRunning = errors.New("a backfill run is already in progress")
