package bench_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/theflywheel/assoc"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Strategy    string             `json:"strategy"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	BytesPerOp  int                `json:"bytes_per_op,omitempty"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	CommitID  string             `json:"commit_id"`
	Branch    string             `json:"branch"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

func quietArray(keySize int, opts ...assoc.Option) *assoc.Array {
	return assoc.New(keySize, append([]assoc.Option{assoc.WithLogger(assoc.NoopLogger())}, opts...)...)
}

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// recordShape copies the array's table shape into the metrics.
func recordShape(metrics *BenchmarkMetrics, a *assoc.Array) {
	st := a.Stats()
	metrics.Strategy = st.Strategy
	metrics.Metrics["primary_capacity"] = float64(st.PrimaryCapacity)
	metrics.Metrics["secondary_capacity"] = float64(st.SecondaryCapacity)
	metrics.Metrics["rehashes"] = float64(st.Rehashes)
	metrics.Metrics["displacements"] = float64(st.Displacements)
	if slots := st.PrimaryCapacity + st.SecondaryCapacity; slots > 0 {
		metrics.Metrics["load"] = float64(st.Count) / float64(slots)
	}
	if st.Count > 0 {
		metrics.Metrics["displacements_per_key"] = float64(st.Displacements) / float64(st.Count)
	}
}

// cleanupMetrics removes per-batch progress metrics
func cleanupMetrics(metrics *BenchmarkMetrics) {
	if metrics.Metrics == nil {
		return
	}

	filtered := make(map[string]float64)
	for key, value := range metrics.Metrics {
		if strings.HasPrefix(key, "batch_") || strings.HasPrefix(key, "memory_mb_") {
			continue
		}
		filtered[key] = value
	}
	metrics.Metrics = filtered
}

// gitInfo reads the branch and short commit from the repository root.
func gitInfo(repoRoot string) (branch, commitID string) {
	branch, commitID = "dev", "local"

	head, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return branch, commitID
	}
	content := strings.TrimSpace(string(head))
	if !strings.HasPrefix(content, "ref: ") {
		return branch, content
	}

	ref := strings.TrimPrefix(content, "ref: ")
	branch = strings.TrimPrefix(ref, "refs/heads/")
	if data, err := os.ReadFile(filepath.Join(repoRoot, ".git", ref)); err == nil {
		commitID = strings.TrimSpace(string(data))
		if len(commitID) >= 8 {
			commitID = commitID[:8]
		}
	}
	return branch, commitID
}

// saveBenchmarkResult appends a benchmark result to benchmark_history/<resultsFile>
// under the repository root.
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	cleanupMetrics(&metrics)

	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	repoRoot := filepath.Dir(currentDir)

	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	branch, commitID := gitInfo(repoRoot)
	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existing, err := os.ReadFile(latestFile); err == nil {
		var prev BenchmarkSummary
		if err := sonnet.Unmarshal(existing, &prev); err == nil {
			summary.Results = append(prev.Results, metrics)
		}
	}

	data, err := sonnet.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if err := os.WriteFile(latestFile, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Printf("Benchmark results saved to: %s\n", latestFile)
	return nil
}
