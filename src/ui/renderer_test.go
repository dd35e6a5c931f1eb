package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

func testState(mode Mode) State {
	return State{
		Mode:         mode,
		Version:      "v25.12F",
		Platform:     "linkedin",
		SettingsLine: "🧩 Pictograma · 👔 Profesional",
		ModelsLine:   "TXT gemini-2.5-flash · IMG gemini-2.5-flash-image",
		List:         list.New(nil, list.NewDefaultDelegate(), 40, 10),
		TextArea:     textarea.New(),
		Viewport:     viewport.New(60, 10),
		Spinner:      spinner.New(),
	}
}

func TestRenderMainContainsStatus(t *testing.T) {
	out := Render(testState(ModeMain), NewStyles())
	if !strings.Contains(out, "PLATAFORMA: LINKEDIN") {
		t.Error("platform status missing")
	}
	if !strings.Contains(out, "v25.12F") {
		t.Error("version missing from header")
	}
}

func TestRenderGateShowsError(t *testing.T) {
	s := testState(ModeGate)
	s.GateError = "Palabra incorrecta."
	out := Render(s, NewStyles())
	if !strings.Contains(out, "Acceso restringido") {
		t.Error("gate header missing")
	}
	if !strings.Contains(out, "Palabra incorrecta.") {
		t.Error("gate error missing")
	}
}

func TestRenderWorkingShowsProgress(t *testing.T) {
	s := testState(ModeMain)
	s.Working = true
	s.ProgressPct = 60
	s.ProgressMsg = "Generando imagen..."
	out := Render(s, NewStyles())
	if !strings.Contains(out, "60% Generando imagen...") {
		t.Error("progress milestone missing")
	}
}

func TestRenderFooterPerMode(t *testing.T) {
	main := Render(testState(ModeMain), NewStyles())
	if !strings.Contains(main, "ctrl+g: generar") {
		t.Error("main help missing")
	}
	cred := Render(testState(ModeCredential), NewStyles())
	if !strings.Contains(cred, "enter: confirmar") {
		t.Error("credential help missing")
	}
}

func TestRenderPickerTitle(t *testing.T) {
	s := testState(ModePicker)
	s.PickerTitle = "🎨 Estilo visual"
	out := Render(s, NewStyles())
	if !strings.Contains(out, "🎨 Estilo visual") {
		t.Error("picker title missing")
	}
}
