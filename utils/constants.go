// File: utils/constants.go
package utils

// Redis key prefixes for booking state.
const (
	SessionCachePrefix = "booking:session:"
	SubmitLockPrefix   = "booking:submit:"
	NoticePrefix       = "booking:notice:"
)
