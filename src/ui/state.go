package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// Mode represents the current UI state
type Mode int

const (
	ModeGate Mode = iota
	ModeMain
	ModePicker
	ModeHistory
	ModeCredential
	ModeInstruction
	ModeSuggestions
)

// State contains all the data required to render the UI.
// This decouples the renderer from the main application logic.
type State struct {
	Mode        Mode
	PickerTitle string

	Version      string
	Platform     string
	SettingsLine string
	ModelsLine   string
	Topic        string

	Working      bool
	WorkingText  string
	ProgressPct  int
	ProgressMsg  string
	StatusText   string
	ErrorText    string
	NewsLine     string
	PublicIP     string
	Tokens       string
	Elapsed      time.Duration
	HasContent   bool
	HistoryCount int

	GateError string

	// Bubble Tea models
	List     list.Model
	TextArea textarea.Model
	Viewport viewport.Model
	Spinner  spinner.Model
}
