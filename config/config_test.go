package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidate_SubmissionTimings(t *testing.T) {
	valid := Config{
		InquiryTimeout:   20 * time.Second,
		SubmitLockTTL:    45 * time.Second,
		SubmitStaleAfter: 10 * time.Minute,
	}
	require.NoError(t, valid.Validate())

	lockTooShort := valid
	lockTooShort.SubmitLockTTL = 20 * time.Second
	require.ErrorContains(t, lockTooShort.Validate(), "SUBMIT_LOCK_TTL")

	staleTooSoon := valid
	staleTooSoon.SubmitStaleAfter = 30 * time.Second
	require.ErrorContains(t, staleTooSoon.Validate(), "SUBMIT_STALE_AFTER")

	noTimeout := valid
	noTimeout.InquiryTimeout = 0
	require.Error(t, noTimeout.Validate())
}
