package app

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Profiler keeps the last CPU time of each named frame phase and a
// frames-per-second figure refreshed once per second.
type Profiler struct {
	Scopes     map[string]time.Duration
	StartTimes map[string]time.Time
	Counts     map[string]int
	Order      []string

	FPS        float64
	frameCount int
	fpsTime    float64
	lastFrame  float64
}

func NewProfiler() *Profiler {
	return &Profiler{
		Scopes:     make(map[string]time.Duration),
		StartTimes: make(map[string]time.Time),
		Counts:     make(map[string]int),
		Order:      make([]string, 0),
	}
}

func (p *Profiler) BeginScope(name string) {
	p.StartTimes[name] = time.Now()
	if _, seen := p.Scopes[name]; !seen {
		p.Order = append(p.Order, name)
		p.Scopes[name] = 0
	}
}

func (p *Profiler) EndScope(name string) {
	if start, ok := p.StartTimes[name]; ok {
		p.Scopes[name] = time.Since(start)
	}
}

func (p *Profiler) SetCount(name string, count int) {
	p.Counts[name] = count
}

// FrameDone records a presented frame at time now (seconds) and reports
// whether FPS was refreshed.
func (p *Profiler) FrameDone(now float64) bool {
	if p.lastFrame <= 0 {
		p.lastFrame = now
		return false
	}
	p.frameCount++
	p.fpsTime += now - p.lastFrame
	p.lastFrame = now

	if p.fpsTime < 1.0 {
		return false
	}
	p.FPS = float64(p.frameCount) / p.fpsTime
	p.frameCount = 0
	p.fpsTime = 0
	return true
}

// String renders a single log line, e.g. "fps=60.0 update=0.02ms render=0.35ms vertices=36".
func (p *Profiler) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fps=%.1f", p.FPS)

	for _, name := range p.Order {
		ms := float64(p.Scopes[name].Microseconds()) / 1000.0
		fmt.Fprintf(&sb, " %s=%.2fms", name, ms)
	}

	keys := make([]string, 0, len(p.Counts))
	for k := range p.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%d", k, p.Counts[k])
	}
	return sb.String()
}
