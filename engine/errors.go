package engine

import "errors"

var ErrRunning = errors.New("engine: scheduler already running")
