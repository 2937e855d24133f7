package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// FrameMonitor tracks the frame rate and flags sustained drops
type FrameMonitor struct {
	threshold float64
	warmup    float64
	cooldown  float64

	fps     float64
	frames  int
	window  float64
	elapsed float64

	lastDrop float64
	dropped  bool
}

const (
	// fpsWindow is how often the frame rate is recomputed, in seconds
	fpsWindow = 0.5

	// monitorWarmup ignores drops while the window and audio device come up
	monitorWarmup = 3.0

	// dropCooldown limits drop reports to one per this many seconds
	dropCooldown = 10.0
)

// NewFrameMonitor creates a monitor reporting drops below threshold frames per second
func NewFrameMonitor(threshold float64) *FrameMonitor {
	return &FrameMonitor{
		threshold: threshold,
		warmup:    monitorWarmup,
		cooldown:  dropCooldown,
		fps:       60,
	}
}

// FPS returns the last measured frame rate
func (m *FrameMonitor) FPS() float64 { return m.fps }

// Tick records one frame of dt seconds and reports whether a drop was detected on this frame
func (m *FrameMonitor) Tick(dt float64) bool {
	if dt <= 0 {
		return false
	}
	m.frames++
	m.window += dt
	m.elapsed += dt

	if m.window < fpsWindow {
		return false
	}
	m.fps = float64(m.frames) / m.window
	m.frames = 0
	m.window = 0

	if m.threshold <= 0 || m.fps >= m.threshold || m.elapsed < m.warmup {
		return false
	}
	if m.dropped && m.elapsed-m.lastDrop < m.cooldown {
		return false
	}
	m.dropped = true
	m.lastDrop = m.elapsed
	return true
}

// ErrProfiling is returned when a capture is already running or cooling down
var ErrProfiling = errors.New("profile capture busy")

// Profiler captures CPU profiles and execution traces when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
	}
}

// CaptureProfile records a CPU profile and a trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling || time.Since(p.lastCaptureTime) < p.captureCooldown {
		return ErrProfiling
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("[profile] cpu: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("[profile] trace: %v", err)
			}
		}()
		wg.Wait()

		p.logSummary(baseName)
	}()

	return nil
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("[profile] cpu profile saved to %s", path)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("[profile] trace saved to %s", path)
	return nil
}

// logSummary prints where the profile went and the heap at capture time
func (p *Profiler) logSummary(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("[profile] could not stat profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("[profile] %s (%.2f KB), view with: go tool pprof -http=:8080 %s", baseName, float64(info.Size())/1024, path)
	log.Printf("[profile] heap alloc %d KB, sys %d KB, gc runs %d, heap objects %d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
