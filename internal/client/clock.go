package client

import "time"

// timeNow is stubbed in tests that assert timestamp stamping.
var timeNow = time.Now
