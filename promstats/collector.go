// Package promstats exports the block usage of fixed-block managers as Prometheus gauges.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vkngwrapper/arsenal/fixedblock"
)

// StatisticsSource is anything that can report fixed-block usage. *manager.Manager satisfies it.
type StatisticsSource interface {
	AddStatistics(stats *fixedblock.Statistics)
}

var (
	arenaBytesDesc = prometheus.NewDesc(
		"fixedblock_arena_bytes",
		"Size in bytes of the buffer backing the arena.",
		[]string{"manager"}, nil,
	)
	blocksDesc = prometheus.NewDesc(
		"fixedblock_blocks",
		"Number of blocks the arena is partitioned into.",
		[]string{"manager"}, nil,
	)
	blockBytesDesc = prometheus.NewDesc(
		"fixedblock_block_bytes",
		"Number of bytes covered by blocks.",
		[]string{"manager"}, nil,
	)
	allocationsDesc = prometheus.NewDesc(
		"fixedblock_allocations",
		"Number of blocks currently handed out to callers.",
		[]string{"manager"}, nil,
	)
	allocationBytesDesc = prometheus.NewDesc(
		"fixedblock_allocation_bytes",
		"Number of bytes covered by blocks currently handed out to callers.",
		[]string{"manager"}, nil,
	)
)

// Collector reads statistics from its source on every scrape. The allocator is not safe for
// concurrent use, so the host must make sure scrapes do not overlap with the source's owner.
type Collector struct {
	name   string
	source StatisticsSource
}

var _ prometheus.Collector = &Collector{}

// NewCollector creates a Collector that labels every metric with manager=name
func NewCollector(name string, source StatisticsSource) *Collector {
	return &Collector{name: name, source: source}
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- arenaBytesDesc
	descs <- blocksDesc
	descs <- blockBytesDesc
	descs <- allocationsDesc
	descs <- allocationBytesDesc
}

func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	var stats fixedblock.Statistics
	c.source.AddStatistics(&stats)

	metrics <- prometheus.MustNewConstMetric(arenaBytesDesc, prometheus.GaugeValue, float64(stats.ArenaBytes), c.name)
	metrics <- prometheus.MustNewConstMetric(blocksDesc, prometheus.GaugeValue, float64(stats.BlockCount), c.name)
	metrics <- prometheus.MustNewConstMetric(blockBytesDesc, prometheus.GaugeValue, float64(stats.BlockBytes), c.name)
	metrics <- prometheus.MustNewConstMetric(allocationsDesc, prometheus.GaugeValue, float64(stats.AllocationCount), c.name)
	metrics <- prometheus.MustNewConstMetric(allocationBytesDesc, prometheus.GaugeValue, float64(stats.AllocationBytes), c.name)
}
