package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Items    int
	Kinds    int
	Seed     uint64

	// Results
	TotalOps      int64
	TotalTime     time.Duration
	FinalItems    int
	FinalTypes    map[string]int
	SnapshotBytes int
	Ops           []OpStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Inventory Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Items:** {{.Items}}
- **Catalog Kinds:** {{.Kinds}}
- **Seed:** {{.Seed}}

## Results
- **Total Operations:** {{.TotalOps}}
- **Total Test Time:** {{.TotalTime}}
- **Final Items:** {{.FinalItems}}
- **Final Snapshot Size:** {{.SnapshotBytes | kb}} KiB
{{range $name, $count := .FinalTypes}}  - {{$name}}: {{$count}}
{{end}}
## Operations
| Op | Calls | Hits | Misses | Avg | Min | Max |
|---|---|---|---|---|---|---|
{{range .Ops}}| {{.Name}} | {{.Calls}} | {{.Hits}} | {{.Misses}} | {{.Time.Avg}} | {{.Time.Min}} | {{.Time.Max}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"kb": func(n int) string {
			return fmt.Sprintf("%.1f", float64(n)/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
