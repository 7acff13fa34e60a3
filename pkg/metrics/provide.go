/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package imetrics

// Provide s.e.
func Provide() IMetrics {
	return newMetrics()
}
