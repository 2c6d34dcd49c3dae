package session

import "errors"

var (
	// ErrNotReady is returned for edits attempted outside the Ready state
	ErrNotReady = errors.New("session is not ready")

	// ErrBusy is returned by Save while another save is running
	ErrBusy = errors.New("a save is already in progress")

	// ErrClosed is returned once the session has been closed
	ErrClosed = errors.New("session is closed")
)
