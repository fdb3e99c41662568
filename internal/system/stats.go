package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// RunStats collects playback/encoding metrics for the optional performance
// report.
type RunStats struct {
	Start    time.Time
	Events   int
	Frames   int
	Duration float64 // animated seconds
}

// Report prints the performance summary in the console, including host CPU
// and memory figures.
func (s RunStats) Report() {
	elapsed := time.Since(s.Start)

	effFPS := 0.0
	if elapsed.Seconds() > 0 {
		effFPS = float64(s.Frames) / elapsed.Seconds()
	}

	fmt.Println("--- [PERFORMANCE REPORT] ---")
	fmt.Printf("Total Time: %.2fs\n", elapsed.Seconds())
	fmt.Printf("Events Played: %d\n", s.Events)
	fmt.Printf("Frames Written: %d (%.2fs of animation)\n", s.Frames, s.Duration)
	fmt.Printf("Effective FPS: %.2f\n", effFPS)

	if cores, err := cpu.Counts(true); err == nil {
		fmt.Printf("CPU Cores: %d\n", cores)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Printf("Host Memory: %.1f%% of %.1f GiB used\n",
			vm.UsedPercent, float64(vm.Total)/(1<<30))
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := proc.MemoryInfo(); err == nil {
			fmt.Printf("Process RSS: %.1f MiB\n", float64(mi.RSS)/(1<<20))
		}
	}
	fmt.Println("----------------------------")
}
