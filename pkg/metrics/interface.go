/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package imetrics

type IMetric interface {
	Name() string

	// Loader returns empty string when not specified
	Loader() string
}

type IMetrics interface {
	// Increase metric value with "delta".
	// The default metric value is always 0.
	// Naming best practices: https://prometheus.io/docs/practices/naming/
	//
	// @ConcurrentAccess
	Increase(metricName string, loader string, valueDelta float64)

	// Returns current value of metric, 0 if metric was never increased.
	//
	// @ConcurrentAccess
	Value(metricName string, loader string) float64

	// List lists current values of all metrics, ordered by name
	//
	// @ConcurrentAccess
	List(cb func(metric IMetric, metricValue float64) (err error)) (err error)
}
