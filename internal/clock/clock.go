package clock

import "time"

// NowFunc returns current time; tests override it to pin event timestamps.
var NowFunc = time.Now

// Now returns NowFunc() in UTC.
func Now() time.Time { return NowFunc().UTC() }
