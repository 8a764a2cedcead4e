package metrics_test

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/saketk/familystream/pkg/metrics"
)

// Example_basicUsage demonstrates recording stage runs.
func Example_basicUsage() {
	registry := metrics.NewRegistry(prometheus.NewRegistry())

	registry.ObserveStage("filter", 2, 3*time.Millisecond, nil)
	registry.ObserveStage("filter", 2, 2*time.Millisecond, nil)

	fmt.Println(testutil.ToFloat64(registry.StageRuns.WithLabelValues("filter")))
	fmt.Println(testutil.ToFloat64(registry.LinesEmitted.WithLabelValues("filter")))

	// Output:
	// 2
	// 4
}

// Example_configuration demonstrates different metrics configurations.
func Example_configuration() {
	defaultConfig := metrics.DefaultConfig()
	fmt.Printf("Default enabled: %v\n", defaultConfig.Enabled)
	fmt.Printf("Default namespace: %s\n", defaultConfig.Namespace)

	customConfig := metrics.Config{
		Enabled:   false,
		Namespace: "myapp",
	}
	fmt.Printf("Custom enabled: %v\n", customConfig.Enabled)
	fmt.Printf("Custom namespace: %s\n", customConfig.Namespace)
	fmt.Printf("Disabled registry is nil: %v\n", metrics.New(customConfig) == nil)

	// Output:
	// Default enabled: true
	// Default namespace: familystream
	// Custom enabled: false
	// Custom namespace: myapp
	// Disabled registry is nil: true
}
