package observ

import (
	"sort"
	"strings"
	"sync"
)

type registry struct {
	mu       sync.Mutex
	counters map[string]map[string]int64   // name -> labelsKey -> count
	gauges   map[string]map[string]float64 // name -> labelsKey -> value
}

var reg = &registry{
	counters: map[string]map[string]int64{},
	gauges:   map[string]map[string]float64{},
}

// canonicalize label map so key order is stable
func canonLabels(lbl map[string]string) string {
	if len(lbl) == 0 {
		return ""
	}
	keys := make([]string, 0, len(lbl))
	for k := range lbl {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(lbl[k])
	}
	return b.String()
}

func IncCounter(name string, labels map[string]string) {
	IncCounterBy(name, labels, 1.0)
}

func IncCounterBy(name string, labels map[string]string, value float64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	m, ok := reg.counters[name]
	if !ok {
		m = map[string]int64{}
		reg.counters[name] = m
	}
	k := canonLabels(labels)
	m[k] += int64(value)
}

func SetGauge(name string, value float64, labels map[string]string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	m, ok := reg.gauges[name]
	if !ok {
		m = map[string]float64{}
		reg.gauges[name] = m
	}
	k := canonLabels(labels)
	m[k] = value
}

// CounterValue reads one counter series; missing series read as zero.
func CounterValue(name string, labels map[string]string) int64 {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.counters[name][canonLabels(labels)]
}

// MetricsSnapshot is a point-in-time copy of the registry, for the cmd
// harnesses' end-of-run summaries and for tests.
type MetricsSnapshot struct {
	Counters map[string]map[string]int64   `json:"counters"`
	Gauges   map[string]map[string]float64 `json:"gauges"`
}

func Snapshot() MetricsSnapshot {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	snap := MetricsSnapshot{
		Counters: make(map[string]map[string]int64, len(reg.counters)),
		Gauges:   make(map[string]map[string]float64, len(reg.gauges)),
	}
	for name, series := range reg.counters {
		cp := make(map[string]int64, len(series))
		for k, v := range series {
			cp[k] = v
		}
		snap.Counters[name] = cp
	}
	for name, series := range reg.gauges {
		cp := make(map[string]float64, len(series))
		for k, v := range series {
			cp[k] = v
		}
		snap.Gauges[name] = cp
	}
	return snap
}

// Reset clears the registry between runs; the replay harness uses it so the
// two runs it compares start from identical counter state.
func Reset() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.counters = map[string]map[string]int64{}
	reg.gauges = map[string]map[string]float64{}
}
