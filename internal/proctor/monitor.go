// Package proctor observes capability signals during an exam and keeps the
// violation log. It talks to the session only through the lock callback and
// its exported accessors.
package proctor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Camera      Camera
	DeviceType  DeviceType
	BrowserInfo string
	Now         func() time.Time
	// OnLockChange is called, outside the monitor's lock, whenever the
	// fullscreen-loss condition is asserted or cleared.
	OnLockChange func(locked bool)
}

type Monitor struct {
	mu sync.Mutex

	camera       Camera
	stream       Stream
	device       DeviceType
	browser      string
	now          func() time.Time
	onLockChange func(bool)

	counters    Counters
	violations  []Violation
	warnings    []Warning
	flags       Flags
	locked      bool
	endedTracks map[string]bool
}

func NewMonitor(opts Options) *Monitor {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DeviceType == "" {
		opts.DeviceType = DeviceDesktop
	}
	return &Monitor{
		camera:       opts.Camera,
		device:       opts.DeviceType,
		browser:      opts.BrowserInfo,
		now:          opts.Now,
		onLockChange: opts.OnLockChange,
		flags:        Flags{CameraRequired: opts.DeviceType.RequiresCamera()},
		endedTracks:  make(map[string]bool),
	}
}

// recordLocked appends to both violation representations. Caller holds m.mu.
func (m *Monitor) recordLocked(kind Kind, message string) {
	ts := m.now()
	m.violations = append(m.violations, Violation{
		Timestamp: ts.UTC(),
		Kind:      kind,
		Severity:  kind.Severity(),
	})
	m.warnings = append(m.warnings, Warning{
		Time:    ts.Format(warningTimeLayout),
		Kind:    kind,
		Message: message,
	})
	log.Warn().Str("kind", string(kind)).Str("severity", string(kind.Severity())).Msg("Proctor: violation recorded")
}

func (m *Monitor) VisibilityChanged(hidden bool) {
	if !hidden {
		return
	}
	m.mu.Lock()
	m.counters.TabSwitches++
	m.recordLocked(KindTabSwitch, "Switched away from the exam tab")
	m.mu.Unlock()
}

// FullscreenChanged applies a fullscreen transition. Repeated reports of the
// current state are ignored so a platform callback and an explicit re-entry
// do not double count.
func (m *Monitor) FullscreenChanged(active bool) {
	m.mu.Lock()
	if m.flags.FullscreenActive == active && m.locked == !active {
		m.mu.Unlock()
		return
	}
	wasActive := m.flags.FullscreenActive
	m.flags.FullscreenActive = active
	m.locked = !active
	if wasActive && !active {
		m.counters.FullscreenExits++
		m.recordLocked(KindFullscreenExit, "Exited fullscreen mode")
	}
	cb := m.onLockChange
	locked := m.locked
	m.mu.Unlock()

	if cb != nil {
		cb(locked)
	}
}

// FullscreenDenied asserts the lock without counting an exit.
func (m *Monitor) FullscreenDenied() {
	m.mu.Lock()
	m.flags.FullscreenActive = false
	m.locked = true
	cb := m.onLockChange
	m.mu.Unlock()

	if cb != nil {
		cb(true)
	}
}

func (m *Monitor) InputIntercepted(kind InputKind) {
	m.mu.Lock()
	m.counters.SuspiciousActivity++
	m.recordLocked(KindSuspiciousActivity, kind.message())
	m.mu.Unlock()
}

// StartCamera opens the persistent capture stream. It is a no-op on form
// factors exempt from camera proctoring. A denial is logged as a violation
// and returned so the caller can surface a non-blocking notice.
func (m *Monitor) StartCamera(ctx context.Context) error {
	if !m.device.RequiresCamera() || m.camera == nil {
		return nil
	}

	stream, err := m.camera.RequestStream(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.flags.CameraEnabled = false
		m.counters.CameraViolations++
		m.recordLocked(KindCameraDisabled, "Camera access denied")
		if errors.Is(err, apperr.ErrPermission) {
			return err
		}
		return fmt.Errorf("camera unavailable: %w: %v", apperr.ErrPermission, err)
	}
	m.stream = stream
	m.flags.CameraEnabled = true
	return nil
}

// CheckCamera is the periodic health check. Disabled tracks are re-enabled
// silently; a track that ended is logged once.
func (m *Monitor) CheckCamera() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stream == nil {
		return
	}

	healthy := true
	for _, tr := range m.stream.Tracks() {
		if !tr.Live() {
			healthy = false
			if !m.endedTracks[tr.ID()] {
				m.endedTracks[tr.ID()] = true
				m.counters.CameraViolations++
				m.recordLocked(KindCameraStopped, "Camera stopped unexpectedly")
			}
			continue
		}
		if !tr.Enabled() {
			tr.SetEnabled(true)
			log.Debug().Str("track", tr.ID()).Msg("Proctor: re-enabled camera track")
		}
	}
	m.flags.CameraEnabled = healthy
}

// StopCamera stops every track. Safe to call more than once.
func (m *Monitor) StopCamera() {
	m.mu.Lock()
	stream := m.stream
	m.stream = nil
	m.flags.CameraEnabled = false
	m.mu.Unlock()

	if stream != nil {
		stream.Stop()
	}
}

func (m *Monitor) Locked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locked
}

func (m *Monitor) Flags() Flags {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags
}

func (m *Monitor) Counters() Counters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters
}

func (m *Monitor) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	violations := make([]Violation, len(m.violations))
	copy(violations, m.violations)
	warnings := make([]Warning, len(m.warnings))
	copy(warnings, m.warnings)

	return Summary{
		Counters:    m.counters,
		Violations:  violations,
		Warnings:    warnings,
		Flags:       m.flags,
		BrowserInfo: m.browser,
		DeviceType:  m.device,
	}
}
