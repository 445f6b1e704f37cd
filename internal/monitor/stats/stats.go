package stats

import (
	"math"
	"sort"
	"time"

	"uptime-monitor/internal/monitor/model"
)

type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// GranularityForWindow picks the chart bucket size for a window length:
// hourly below the 24h boundary, daily otherwise.
func GranularityForWindow(window time.Duration) Granularity {
	if window < 24*time.Hour {
		return GranularityHour
	}
	return GranularityDay
}

// UptimePercentage over a set of samples. Zero samples is 100 by definition:
// absence of evidence is not evidence of downtime.
func UptimePercentage(results []model.CheckResult) float64 {
	if len(results) == 0 {
		return 100
	}
	up := 0
	for _, r := range results {
		if r.IsUp() {
			up++
		}
	}
	return round2(100 * float64(up) / float64(len(results)))
}

// ResponseTimeStats summarizes probe latency over a window. Only samples
// classified up contribute: failed checks carry no meaningful latency signal.
type ResponseTimeStats struct {
	AvgMs   float64 `json:"avg_ms"`
	MinMs   float64 `json:"min_ms"`
	MaxMs   float64 `json:"max_ms"`
	P95Ms   float64 `json:"p95_ms"`
	P99Ms   float64 `json:"p99_ms"`
	Samples int     `json:"samples"`
}

func ResponseTimes(results []model.CheckResult) ResponseTimeStats {
	var latencies []float64
	for _, r := range results {
		if r.IsUp() {
			latencies = append(latencies, r.LatencyMs)
		}
	}
	if len(latencies) == 0 {
		return ResponseTimeStats{}
	}

	sort.Float64s(latencies)
	sum := 0.0
	for _, l := range latencies {
		sum += l
	}
	return ResponseTimeStats{
		AvgMs:   round3(sum / float64(len(latencies))),
		MinMs:   latencies[0],
		MaxMs:   latencies[len(latencies)-1],
		P95Ms:   percentile(latencies, 0.95),
		P99Ms:   percentile(latencies, 0.99),
		Samples: len(latencies),
	}
}

// percentile uses the nearest-rank method over an ascending-sorted slice.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

// RollupBucket is one time bucket of the chart rollup.
type RollupBucket struct {
	Period       time.Time `json:"period"`
	AvgLatencyMs float64   `json:"avg_latency_ms"`
	UptimePct    float64   `json:"uptime_pct"`
	Samples      int       `json:"samples"`
}

// Rollup groups samples into fixed buckets, producing per bucket the average
// latency of up samples and 100*avg(is_up) as a synthetic uptime percentage.
func Rollup(results []model.CheckResult, granularity Granularity) []RollupBucket {
	type acc struct {
		total      int
		up         int
		latencySum float64
	}
	buckets := make(map[time.Time]*acc)
	for _, r := range results {
		period := truncatePeriod(r.Timestamp.UTC(), granularity)
		a, ok := buckets[period]
		if !ok {
			a = &acc{}
			buckets[period] = a
		}
		a.total++
		if r.IsUp() {
			a.up++
			a.latencySum += r.LatencyMs
		}
	}

	periods := make([]time.Time, 0, len(buckets))
	for period := range buckets {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	rollup := make([]RollupBucket, 0, len(periods))
	for _, period := range periods {
		a := buckets[period]
		bucket := RollupBucket{
			Period:    period,
			UptimePct: round2(100 * float64(a.up) / float64(a.total)),
			Samples:   a.total,
		}
		if a.up > 0 {
			bucket.AvgLatencyMs = round3(a.latencySum / float64(a.up))
		}
		rollup = append(rollup, bucket)
	}
	return rollup
}

func truncatePeriod(t time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityHour:
		return t.Truncate(time.Hour)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
