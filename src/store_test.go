package studio

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := OpenStore(path, zap.NewNop())
	store.Save("k", "valor")

	reopened := OpenStore(path, zap.NewNop())
	var got string
	if !reopened.Load("k", &got) || got != "valor" {
		t.Fatalf("got %q", got)
	}
}

func TestStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := OpenStore(path, zap.NewNop())
	var v string
	if store.Load("k", &v) {
		t.Fatal("corrupt store should start empty")
	}
}

func TestSettingsStoreRestoresChoices(t *testing.T) {
	store := newTestStore(t)
	ss := NewSettingsStore(store)
	ss.SetVisualStyle(StyleCinematic)
	ss.SetTextTone(ToneUrgent)
	ss.TogglePersona(PersonaInnovator)
	ss.SetTopic("agentes autónomos")

	again := NewSettingsStore(store)
	if again.Settings.VisualStyle != StyleCinematic {
		t.Errorf("style = %q", again.Settings.VisualStyle)
	}
	if again.Settings.TextTone != ToneUrgent {
		t.Errorf("tone = %q", again.Settings.TextTone)
	}
	if !HasPersona(again.Settings.Personas, PersonaInnovator) {
		t.Errorf("personas = %v", again.Settings.Personas)
	}
	if again.Settings.Topic != "agentes autónomos" {
		t.Errorf("topic = %q", again.Settings.Topic)
	}
}

func TestSettingsStoreRejectsUnknownStoredValue(t *testing.T) {
	store := newTestStore(t)
	store.Save(keyVisualStyle, "vaporwave")
	store.Save(keyPersonas, []string{"innovator", "timeTraveler"})

	ss := NewSettingsStore(store)
	if ss.Settings.VisualStyle != DefaultSettings().VisualStyle {
		t.Errorf("unknown style kept: %q", ss.Settings.VisualStyle)
	}
	if len(ss.Settings.Personas) != 1 || ss.Settings.Personas[0] != PersonaInnovator {
		t.Errorf("personas = %v", ss.Settings.Personas)
	}
}

func TestClearAllKeepsCredential(t *testing.T) {
	store := newTestStore(t)
	ss := NewSettingsStore(store)
	ss.SetAPIKey("secreta")
	ss.SetTopic("tema")
	ss.SetVisualStyle(StylePixelArt)

	ss.ClearAll()

	if ss.Settings.Topic != "" || ss.Settings.VisualStyle != DefaultSettings().VisualStyle {
		t.Errorf("settings not reset: %+v", ss.Settings)
	}
	if ss.APIKey() != "secreta" {
		t.Error("credential must survive a reset")
	}
}
