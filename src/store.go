package studio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Storage keys. The v2/v25 suffixes survive from older layouts so a
// fresh build does not resurrect stale values saved under the old names.
const (
	keyTopic           = "redactorApp_topicInput"
	keyVisualStyle     = "redactorApp_visualStyle"
	keyTextTone        = "redactorApp_textTone"
	keyCreativity      = "redactorApp_creativityLevel"
	keyPersonas        = "redactorApp_contextualPersonas_v2"
	keyImageHints      = "redactorApp_imagePromptHints"
	keyTextModel       = "redactorApp_selectedTextModel_v25"
	keyImageModel      = "redactorApp_selectedImageModel_v25"
	keyImageFormat     = "redactorApp_imageFormat"
	keyAdvanced        = "redactorApp_advancedAISettings"
	keyAllowText       = "redactorApp_allowTextInImage"
	keyHistory         = "redactorApp_history_v2"
	keyAPIKey          = "redactor_api_key"
	keyHeadlineEnabled = "redactorApp_generateHeadlineEnabled"
)

// Store is a string-keyed JSON file acting as durable key-value storage.
// It is a convenience cache, not a system of record: every write error is
// swallowed after a warning, and a corrupt file simply starts empty.
type Store struct {
	path   string
	logger *zap.Logger

	mu   sync.Mutex
	data map[string]json.RawMessage
}

func OpenStore(path string, logger *zap.Logger) *Store {
	s := &Store{path: path, logger: logger, data: map[string]json.RawMessage{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("settings file unreadable, starting empty", zap.String("path", path), zap.Error(err))
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		logger.Warn("settings file corrupt, starting empty", zap.String("path", path), zap.Error(err))
		s.data = map[string]json.RawMessage{}
	}
	return s
}

// Load unmarshals the stored value for key into out and reports whether
// a usable value existed.
func (s *Store) Load(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("stored value unparsable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save persists value under key synchronously. Failures are non-fatal.
func (s *Store) Save(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("value not serializable", zap.String("key", key), zap.Error(err))
		return
	}
	s.mu.Lock()
	s.data[key] = raw
	s.flushLocked()
	s.mu.Unlock()
}

// Delete removes key and persists.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.flushLocked()
	s.mu.Unlock()
}

func (s *Store) flushLocked() {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		s.logger.Warn("settings not serializable", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Warn("settings dir not writable", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.logger.Warn("settings not persisted", zap.String("path", s.path), zap.Error(err))
	}
}

// loadString returns the stored string for key, or def when missing or
// unparsable.
func loadString(s *Store, key, def string) string {
	var v string
	if s.Load(key, &v) {
		return v
	}
	return def
}

func loadBool(s *Store, key string, def bool) bool {
	var v bool
	if s.Load(key, &v) {
		return v
	}
	return def
}

// loadChoice restores a stored enum value, falling back to def when the
// value is missing or no longer part of the valid set. Model option
// lists are fetched dynamically, so a stored selection can reference a
// model that is no longer offered.
func loadChoice[T ~string](s *Store, key string, def T, valid []T) T {
	var v T
	if !s.Load(key, &v) {
		return def
	}
	for _, ok := range valid {
		if v == ok {
			return v
		}
	}
	return def
}

// SettingsStore binds GenerationSettings to the key-value store. Every
// setter updates the in-memory snapshot and persists in one step, so
// callers never observe a partial save.
type SettingsStore struct {
	store    *Store
	Settings GenerationSettings
}

func NewSettingsStore(store *Store) *SettingsStore {
	ss := &SettingsStore{store: store}
	ss.Settings = ss.load()
	return ss
}

func (ss *SettingsStore) load() GenerationSettings {
	def := DefaultSettings()
	s := GenerationSettings{
		Topic:      loadString(ss.store, keyTopic, def.Topic),
		VisualStyle: loadChoice(ss.store, keyVisualStyle, def.VisualStyle, []VisualStyle{
			StyleInfographic, StylePhotorealistic, StylePictogram, StyleRetroFuturism,
			StyleAbstractExpressionism, StylePixelArt, StyleWatercolor, StyleCinematic,
			StyleDroneShot, StyleMacroPhotography,
		}),
		TextTone: loadChoice(ss.store, keyTextTone, def.TextTone, []TextTone{
			ToneProfessional, ToneInspirational, ToneApproachable,
			ToneTechnical, ToneUrgent, ToneCollaborative,
		}),
		Creativity: loadChoice(ss.store, keyCreativity, def.Creativity,
			[]CreativityLevel{CreativityLow, CreativityMedium, CreativityHigh}),
		ImageHints: loadString(ss.store, keyImageHints, def.ImageHints),
		ImageFormat: loadChoice(ss.store, keyImageFormat, def.ImageFormat,
			[]ImageFormat{FormatJPEG, FormatPNG, FormatWebP}),
		AllowTextInImage: loadBool(ss.store, keyAllowText, def.AllowTextInImage),
		TextModel:        loadString(ss.store, keyTextModel, def.TextModel),
		ImageModel:       loadString(ss.store, keyImageModel, def.ImageModel),
		Advanced:         def.Advanced,
		HeadlineEnabled:  loadBool(ss.store, keyHeadlineEnabled, def.HeadlineEnabled),
	}
	ss.store.Load(keyAdvanced, &s.Advanced)

	var personas []Persona
	if ss.store.Load(keyPersonas, &personas) {
		personas = filterKnownPersonas(personas)
	}
	if len(personas) == 0 {
		personas = def.Personas
	}
	s.Personas = personas
	return s
}

func filterKnownPersonas(in []Persona) []Persona {
	var out []Persona
	for _, p := range in {
		for _, opt := range PersonaOptions {
			if p == opt.Value {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (ss *SettingsStore) SetTopic(topic string) {
	ss.Settings.Topic = topic
	ss.store.Save(keyTopic, topic)
}

func (ss *SettingsStore) SetVisualStyle(v VisualStyle) {
	ss.Settings.VisualStyle = v
	ss.store.Save(keyVisualStyle, v)
}

func (ss *SettingsStore) SetTextTone(v TextTone) {
	ss.Settings.TextTone = v
	ss.store.Save(keyTextTone, v)
}

func (ss *SettingsStore) SetCreativity(v CreativityLevel) {
	ss.Settings.Creativity = v
	ss.store.Save(keyCreativity, v)
}

func (ss *SettingsStore) TogglePersona(p Persona) {
	ss.Settings.Personas = TogglePersona(ss.Settings.Personas, p)
	ss.store.Save(keyPersonas, ss.Settings.Personas)
}

func (ss *SettingsStore) SetImageHints(hints string) {
	ss.Settings.ImageHints = hints
	ss.store.Save(keyImageHints, hints)
}

func (ss *SettingsStore) SetImageFormat(v ImageFormat) {
	ss.Settings.ImageFormat = v
	ss.store.Save(keyImageFormat, v)
}

func (ss *SettingsStore) ToggleAllowTextInImage() {
	ss.Settings.AllowTextInImage = !ss.Settings.AllowTextInImage
	ss.store.Save(keyAllowText, ss.Settings.AllowTextInImage)
}

func (ss *SettingsStore) ToggleHeadline() {
	ss.Settings.HeadlineEnabled = !ss.Settings.HeadlineEnabled
	ss.store.Save(keyHeadlineEnabled, ss.Settings.HeadlineEnabled)
}

func (ss *SettingsStore) SetTextModel(model string) {
	ss.Settings.TextModel = model
	ss.store.Save(keyTextModel, model)
}

func (ss *SettingsStore) SetImageModel(model string) {
	ss.Settings.ImageModel = model
	ss.store.Save(keyImageModel, model)
}

func (ss *SettingsStore) SetAdvanced(a AdvancedSettings) {
	ss.Settings.Advanced = a
	ss.store.Save(keyAdvanced, a)
}

// APIKey returns the stored credential, raw.
func (ss *SettingsStore) APIKey() string {
	return loadString(ss.store, keyAPIKey, "")
}

func (ss *SettingsStore) SetAPIKey(key string) {
	ss.store.Save(keyAPIKey, key)
}

// ClearAll resets every setting to factory defaults except the stored
// credential, and wipes the persisted copies.
func (ss *SettingsStore) ClearAll() {
	for _, key := range []string{
		keyTopic, keyVisualStyle, keyTextTone, keyCreativity, keyPersonas,
		keyImageHints, keyTextModel, keyImageModel, keyImageFormat,
		keyAdvanced, keyAllowText, keyHistory, keyHeadlineEnabled,
	} {
		ss.store.Delete(key)
	}
	ss.Settings = DefaultSettings()
}
