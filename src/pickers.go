package studio

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barnaia/redactor-studio/src/ui"
)

var pickerTitles = map[pickerKind]string{
	pickMenu:       "⚙️ Ajustes",
	pickPlatform:   "📣 Plataforma de destino",
	pickStyle:      "🎨 Estilo visual",
	pickTone:       "🗣️ Tono del texto",
	pickCreativity: "💡 Nivel de creatividad",
	pickPersona:    "🎭 Perspectivas (enter: alternar, esc: volver)",
	pickFormat:     "🖼️ Formato de imagen",
	pickTextModel:  "🤖 Modelo de texto",
	pickImageModel: "🖌️ Modelo de imagen",
}

const (
	menuPlatform   = "platform"
	menuStyle      = "style"
	menuTone       = "tone"
	menuCreativity = "creativity"
	menuPersona    = "persona"
	menuFormat     = "format"
	menuTextModel  = "textModel"
	menuImageModel = "imageModel"
	menuHeadline   = "headline"
	menuAllowText  = "allowText"
	menuReset      = "reset"
)

func onOff(b bool) string {
	if b {
		return "✔ activado"
	}
	return "✘ desactivado"
}

func (m *model) pickerItems(kind pickerKind) []list.Item {
	s := m.engine.Settings.Settings
	var items []list.Item

	mark := func(selected bool) string {
		if selected {
			return "✅ "
		}
		return ""
	}

	switch kind {
	case pickMenu:
		items = []list.Item{
			choiceItem{label: "📣 Plataforma", desc: string(m.platform), value: menuPlatform},
			choiceItem{label: "🎨 Estilo visual", desc: labelForChoice(VisualStyleOptions, s.VisualStyle), value: menuStyle},
			choiceItem{label: "🗣️ Tono", desc: labelForChoice(TextToneOptions, s.TextTone), value: menuTone},
			choiceItem{label: "💡 Creatividad", desc: labelForChoice(CreativityOptions, s.Creativity), value: menuCreativity},
			choiceItem{label: "🎭 Perspectivas", desc: personaSummary(s.Personas), value: menuPersona},
			choiceItem{label: "🖼️ Formato de imagen", desc: labelForChoice(ImageFormatOptions, s.ImageFormat), value: menuFormat},
			choiceItem{label: "🤖 Modelo de texto", desc: LabelFor(m.textModelOpts, s.TextModel), value: menuTextModel},
			choiceItem{label: "🖌️ Modelo de imagen", desc: LabelFor(m.imageModelOpts, s.ImageModel), value: menuImageModel},
			choiceItem{label: "📰 Titular automático", desc: onOff(s.HeadlineEnabled), value: menuHeadline},
			choiceItem{label: "🔤 Texto en imagen", desc: onOff(s.AllowTextInImage), value: menuAllowText},
			choiceItem{label: "🧹 Restablecer ajustes", desc: "Valores de fábrica, la clave se conserva", value: menuReset},
		}
	case pickPlatform:
		for _, p := range AllPlatforms {
			items = append(items, choiceItem{label: mark(p == m.platform) + string(p), value: string(p)})
		}
	case pickStyle:
		for _, o := range VisualStyleOptions {
			items = append(items, choiceItem{label: mark(o.Value == s.VisualStyle) + o.Label, value: string(o.Value)})
		}
	case pickTone:
		for _, o := range TextToneOptions {
			items = append(items, choiceItem{label: mark(o.Value == s.TextTone) + o.Label, value: string(o.Value)})
		}
	case pickCreativity:
		for _, o := range CreativityOptions {
			items = append(items, choiceItem{label: mark(o.Value == s.Creativity) + o.Label, value: string(o.Value)})
		}
	case pickPersona:
		for _, o := range PersonaOptions {
			items = append(items, choiceItem{label: mark(HasPersona(s.Personas, o.Value)) + o.Label, value: string(o.Value)})
		}
	case pickFormat:
		for _, o := range ImageFormatOptions {
			items = append(items, choiceItem{label: mark(o.Value == s.ImageFormat) + o.Label, value: string(o.Value)})
		}
	case pickTextModel:
		for _, o := range m.textModelOpts {
			items = append(items, choiceItem{label: mark(o.Value == s.TextModel) + o.Label, desc: o.Value, value: o.Value})
		}
	case pickImageModel:
		for _, o := range m.imageModelOpts {
			items = append(items, choiceItem{label: mark(o.Value == s.ImageModel) + o.Label, desc: o.Value, value: o.Value})
		}
	}
	return items
}

func (m *model) openPicker(kind pickerKind) {
	m.picker = kind
	m.mode = ui.ModePicker
	m.list.SetItems(m.pickerItems(kind))
	m.list.Select(0)
}

func (m *model) applyPicker() (bool, tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(choiceItem)
	if !ok {
		return true, m, nil
	}
	ss := m.engine.Settings

	switch m.picker {
	case pickMenu:
		switch item.value {
		case menuPlatform:
			m.openPicker(pickPlatform)
		case menuStyle:
			m.openPicker(pickStyle)
		case menuTone:
			m.openPicker(pickTone)
		case menuCreativity:
			m.openPicker(pickCreativity)
		case menuPersona:
			m.openPicker(pickPersona)
		case menuFormat:
			m.openPicker(pickFormat)
		case menuTextModel:
			m.openPicker(pickTextModel)
		case menuImageModel:
			m.openPicker(pickImageModel)
		case menuHeadline:
			ss.ToggleHeadline()
			m.list.SetItems(m.pickerItems(pickMenu))
		case menuAllowText:
			ss.ToggleAllowTextInImage()
			m.list.SetItems(m.pickerItems(pickMenu))
		case menuReset:
			ss.ClearAll()
			m.engine.History.Clear()
			m.backToMain()
			m.status = "🧹 Ajustes restablecidos."
		}
		return true, m, nil

	case pickPlatform:
		m.platform = Platform(item.value)
	case pickStyle:
		ss.SetVisualStyle(VisualStyle(item.value))
	case pickTone:
		ss.SetTextTone(TextTone(item.value))
	case pickCreativity:
		ss.SetCreativity(CreativityLevel(item.value))
	case pickPersona:
		// Toggling keeps the picker open for multi-selection.
		ss.TogglePersona(Persona(item.value))
		idx := m.list.Index()
		m.list.SetItems(m.pickerItems(pickPersona))
		m.list.Select(idx)
		return true, m, nil
	case pickFormat:
		ss.SetImageFormat(ImageFormat(item.value))
	case pickTextModel:
		ss.SetTextModel(item.value)
	case pickImageModel:
		ss.SetImageModel(item.value)
	}

	m.openPicker(pickMenu)
	return true, m, nil
}

func (m *model) openHistory() {
	entries := m.engine.History.Entries()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, historyItem{entry: e})
	}
	m.list.SetItems(items)
	m.list.Select(0)
	m.mode = ui.ModeHistory
}

func (m *model) openCredential() {
	m.mode = ui.ModeCredential
	m.textarea.Reset()
	m.textarea.Placeholder = "Pega tu API Key de Gemini..."
	m.textarea.Focus()
}

func (m *model) openInstruction(kind instructionKind, title string) {
	m.instruction = kind
	m.mode = ui.ModeInstruction
	m.picker = pickNone
	m.instructionTitle = title
	m.textarea.Reset()
	m.textarea.Placeholder = "Describe el cambio..."
	m.textarea.Focus()
}

func labelForChoice[T ~string](opts []ChoiceOption[T], value T) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return string(value)
}

func personaSummary(personas []Persona) string {
	if len(personas) == 0 {
		return labelForChoice(PersonaOptions, PersonaNeutral)
	}
	summary := ""
	for i, p := range personas {
		if i > 0 {
			summary += ", "
		}
		summary += labelForChoice(PersonaOptions, p)
	}
	return summary
}
