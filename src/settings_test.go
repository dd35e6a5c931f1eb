package studio

import "testing"

func TestTogglePersonaNeutralIsExclusive(t *testing.T) {
	set := []Persona{PersonaInnovator, PersonaStoryteller}
	got := TogglePersona(set, PersonaNeutral)
	if len(got) != 1 || got[0] != PersonaNeutral {
		t.Fatalf("expected neutral-only set, got %v", got)
	}
}

func TestTogglePersonaAddRemove(t *testing.T) {
	set := []Persona{PersonaNeutral}

	set = TogglePersona(set, PersonaInnovator)
	if HasPersona(set, PersonaNeutral) {
		t.Fatalf("neutral should drop when a real persona joins: %v", set)
	}
	if !HasPersona(set, PersonaInnovator) {
		t.Fatalf("innovator missing after toggle: %v", set)
	}

	set = TogglePersona(set, PersonaStoryteller)
	if len(set) != 2 {
		t.Fatalf("expected two personas, got %v", set)
	}

	set = TogglePersona(set, PersonaInnovator)
	if HasPersona(set, PersonaInnovator) || len(set) != 1 {
		t.Fatalf("innovator should be removed: %v", set)
	}
}

func TestTogglePersonaEmptyFallsBackToNeutral(t *testing.T) {
	set := []Persona{PersonaInnovator}
	got := TogglePersona(set, PersonaInnovator)
	if len(got) != 1 || got[0] != PersonaNeutral {
		t.Fatalf("removing the last persona must restore neutral, got %v", got)
	}
}

func TestDefaultSettings(t *testing.T) {
	def := DefaultSettings()
	if def.VisualStyle != StylePictogram {
		t.Errorf("default style = %q", def.VisualStyle)
	}
	if def.ImageModel != DefaultImageModel {
		t.Errorf("default image model = %q", def.ImageModel)
	}
	if def.TextModel == "" || def.TextModel != BestDefaultTextModel(TextModelOptions) {
		t.Errorf("default text model = %q, must be usable before the dynamic listing arrives", def.TextModel)
	}
	if len(def.Personas) != 1 || def.Personas[0] != PersonaNeutral {
		t.Errorf("default personas = %v", def.Personas)
	}
	if !def.HeadlineEnabled {
		t.Error("headline should default on")
	}
	if def.Advanced.Temperature != 0.7 || def.Advanced.TopP != 0.95 || def.Advanced.TopK != 40 {
		t.Errorf("unexpected sampling defaults: %+v", def.Advanced)
	}
}
