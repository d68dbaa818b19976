package proctor

import "time"

type Kind string

const (
	KindTabSwitch          Kind = "tab_switch"
	KindFullscreenExit     Kind = "fullscreen_exit"
	KindCameraDisabled     Kind = "camera_disabled"
	KindCameraStopped      Kind = "camera_stopped"
	KindSuspiciousActivity Kind = "suspicious_activity"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var severities = map[Kind]Severity{
	KindTabSwitch:          SeverityMedium,
	KindFullscreenExit:     SeverityHigh,
	KindCameraDisabled:     SeverityMedium,
	KindCameraStopped:      SeverityHigh,
	KindSuspiciousActivity: SeverityLow,
}

func (k Kind) Severity() Severity {
	if s, ok := severities[k]; ok {
		return s
	}
	return SeverityLow
}

// Violation is the structured log entry stored with the attempt.
type Violation struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      Kind      `json:"kind"`
	Severity  Severity  `json:"severity"`
}

// Warning is the display-oriented twin of a Violation.
type Warning struct {
	Time    string `json:"time"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

const warningTimeLayout = "15:04:05"

type Counters struct {
	TabSwitches        int `json:"tab_switches"`
	FullscreenExits    int `json:"fullscreen_exits"`
	CameraViolations   int `json:"camera_violations"`
	SuspiciousActivity int `json:"suspicious_activity"`
}

type Flags struct {
	CameraRequired   bool `json:"camera_required"`
	CameraEnabled    bool `json:"camera_enabled"`
	FullscreenActive bool `json:"fullscreen_active"`
}

// Summary is everything the monitor hands to the attempt at submission.
type Summary struct {
	Counters    Counters    `json:"counters"`
	Violations  []Violation `json:"violations"`
	Warnings    []Warning   `json:"warnings"`
	Flags       Flags       `json:"flags"`
	BrowserInfo string      `json:"browser_info"`
	DeviceType  DeviceType  `json:"device_type"`
}

type InputKind string

const (
	InputContextMenu      InputKind = "context_menu"
	InputDevToolsShortcut InputKind = "devtools_shortcut"
)

func (k InputKind) message() string {
	switch k {
	case InputContextMenu:
		return "Right-click menu blocked"
	case InputDevToolsShortcut:
		return "Developer tools shortcut blocked"
	}
	return "Blocked input: " + string(k)
}
