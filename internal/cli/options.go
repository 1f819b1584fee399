package cli

import "time"

type Options struct {
	InputPath    string
	Target       int64
	SessionToken string
	Timeout      time.Duration
}
