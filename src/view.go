package studio

import (
	"fmt"
	"strings"

	"github.com/barnaia/redactor-studio/src/ui"
)

func (m *model) View() string {
	return ui.Render(m.uiState(), m.styles)
}

func (m *model) uiState() ui.State {
	s := m.engine.Settings.Settings
	state := m.engine.State()

	title := m.instructionTitle
	if m.mode == ui.ModePicker {
		title = pickerTitles[m.picker]
	}
	if m.mode == ui.ModeSuggestions {
		title = "💡 Temas sugeridos"
	}

	errText := ""
	if state.LastError != nil {
		errText = state.LastError.Message
	}

	tokens := ""
	if state.Tokens != nil {
		tokens = fmt.Sprintf("%d", *state.Tokens)
	}

	newsLine := ""
	if news := m.engine.News(); news != nil {
		newsLine = news.Title
	}

	return ui.State{
		Mode:         m.mode,
		PickerTitle:  title,
		Version:      AppVersion,
		Platform:     string(m.platform),
		SettingsLine: m.settingsLine(s),
		ModelsLine:   m.modelsLine(s),
		Topic:        s.Topic,
		Working:      m.working,
		WorkingText:  m.workingText,
		ProgressPct:  m.progress.Percent,
		ProgressMsg:  m.progress.Message,
		StatusText:   m.status,
		ErrorText:    errText,
		NewsLine:     newsLine,
		PublicIP:     m.publicIP,
		Tokens:       tokens,
		Elapsed:      state.Elapsed,
		HasContent:   m.engine.Content() != nil,
		HistoryCount: m.engine.History.Len(),
		GateError:    m.gateErr,
		List:         m.list,
		TextArea:     m.textarea,
		Viewport:     m.viewport,
		Spinner:      m.spinner,
	}
}

func (m *model) settingsLine(s GenerationSettings) string {
	parts := []string{
		labelForChoice(VisualStyleOptions, s.VisualStyle),
		labelForChoice(TextToneOptions, s.TextTone),
		labelForChoice(CreativityOptions, s.Creativity),
		personaSummary(s.Personas),
		labelForChoice(ImageFormatOptions, s.ImageFormat),
	}
	if s.HeadlineEnabled {
		parts = append(parts, "titular ✔")
	}
	return strings.Join(parts, " · ")
}

func (m *model) modelsLine(s GenerationSettings) string {
	return fmt.Sprintf("TXT %s · IMG %s", s.TextModel, s.ImageModel)
}

// refreshViewport rebuilds the content pane from the engine state.
func (m *model) refreshViewport() {
	var b strings.Builder

	if news := m.engine.News(); news != nil {
		b.WriteString(m.styles.Accent.Render("📰 "+news.Title) + "\n")
		if news.Summary != "" {
			b.WriteString(news.Summary + "\n")
		}
		var meta []string
		if news.PublicationDate != "" {
			meta = append(meta, news.PublicationDate)
		}
		if news.URL != "" {
			meta = append(meta, news.URL)
		}
		if len(meta) > 0 {
			b.WriteString(m.styles.Subtle.Render(strings.Join(meta, " · ")) + "\n")
		}
		b.WriteString("\n")
	}

	if content := m.engine.Content(); content != nil {
		b.WriteString(m.styles.Accent.Render(fmt.Sprintf("— %s —", strings.ToUpper(string(content.Platform)))) + "\n\n")
		b.WriteString(content.Copy + "\n\n")
		if content.ImageBase64 != "" {
			size := len(content.ImageBase64) * 3 / 4
			b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("🖼️ Imagen adjunta (%s, %d KB) — ctrl+s para guardar", content.ImageMIME, size/1024)) + "\n")
		}
	}

	if b.Len() == 0 {
		b.WriteString("Bienvenido. Escribe un tema y pulsa ctrl+g para generar.")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}
