/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package imetrics

import (
	"bytes"
	"strconv"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type metric struct {
	name   string
	loader string
}

func (m *metric) Name() string {
	return m.name
}

func (m *metric) Loader() string {
	return m.loader
}

type mapMetrics struct {
	metrics map[metric]float64
	lock    sync.Mutex
}

func newMetrics() IMetrics {
	return &mapMetrics{
		metrics: make(map[metric]float64),
	}
}

func (m *mapMetrics) Increase(metricName string, loader string, valueDelta float64) {
	m.lock.Lock()
	defer m.lock.Unlock()
	key := metric{name: metricName, loader: loader}
	m.metrics[key] = m.metrics[key] + valueDelta
}

func (m *mapMetrics) Value(metricName string, loader string) float64 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.metrics[metric{name: metricName, loader: loader}]
}

func (m *mapMetrics) List(cb func(metric IMetric, metricValue float64) (err error)) (err error) {
	m.lock.Lock()
	keys := maps.Keys(m.metrics)
	values := make(map[metric]float64, len(keys))
	for _, k := range keys {
		values[k] = m.metrics[k]
	}
	m.lock.Unlock()

	slices.SortFunc(keys, func(a, b metric) bool {
		if a.name != b.name {
			return a.name < b.name
		}
		return a.loader < b.loader
	})
	for i := range keys {
		if err = cb(&keys[i], values[keys[i]]); err != nil {
			return err
		}
	}
	return nil
}

// Returns metric in Prometheus text exposition format
func ToPrometheus(metric IMetric, metricValue float64) []byte {
	bb := bytes.Buffer{}
	bb.WriteString(metric.Name())
	if metric.Loader() != "" {
		bb.WriteString(`{loader="`)
		bb.WriteString(metric.Loader())
		bb.WriteString(`"}`)
	}
	bb.WriteRune(' ')
	bb.WriteString(strconv.FormatFloat(metricValue, 'f', -1, bitSize))
	bb.WriteRune('\n')
	return bb.Bytes()
}
