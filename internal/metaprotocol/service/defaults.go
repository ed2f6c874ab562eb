package service

import "time"

const (
	defaultWorkerCount = 16

	// the node is polled at this period when no block signal arrives
	defaultPollInterval = time.Second
	retrySleepDuration  = 5 * time.Second
)
