/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcload

const (
	DefaultCacheSize      = 16
	DefaultValueCacheSize = 32 * 1024 * 1024

	// DefaultConfigFile is the name of daemon configuration file
	DefaultConfigFile = "astrond.yml"
)

const (
	loadTotal             = "dclass_dcload_load_total"
	loadCachedTotal       = "dclass_dcload_load_cached_total"
	loadFailedTotal       = "dclass_dcload_load_failed_total"
	parseSeconds          = "dclass_dcload_parse_seconds"
	overrideTotal         = "dclass_dcload_override_total"
	overrideCachedTotal   = "dclass_dcload_override_cached_total"
	overrideRejectedTotal = "dclass_dcload_override_rejected_total"
)
