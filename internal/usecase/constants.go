package usecase

import "time"

const (
	// DefaultCacheTTL is how long computed reports stay cached when the
	// caller does not configure a TTL.
	DefaultCacheTTL = 5 * time.Minute

	// reportStock and reportBalance label metrics and cache keys.
	reportStock   = "stock"
	reportBalance = "balance"

	// boundKeyFormat renders window bounds inside cache keys.
	boundKeyFormat = "2006-01-02"
)
