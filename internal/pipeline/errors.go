package pipeline

import "errors"

var (
	// ErrProcessorFailed wraps the error of the processor that aborted an
	// exchange.
	ErrProcessorFailed = errors.New("pipeline: processor failed")
	// ErrEmptyRemoteResult is returned by CallRemote when the remote side
	// answered without a payload and the step requires one.
	ErrEmptyRemoteResult = errors.New("pipeline: remote result is empty")
)
