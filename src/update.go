package studio

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barnaia/redactor-studio/src/ui"
)

// AttachProgram wires the running program into the model so worker
// goroutines can push progress milestones into the event loop.
func (m *model) AttachProgram(p *tea.Program) {
	m.Program = p
	m.engine.SetProgressSink(func(prog Progress) {
		p.Send(progressMsg(prog))
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(m.width-4, m.height-18)
		m.textarea.SetWidth(m.width - 6)
		m.viewport.Width = m.width - 6
		m.viewport.Height = m.height - 22
		if m.viewport.Height < 5 {
			m.viewport.Height = 5
		}
		return m, nil

	case progressMsg:
		m.progress = Progress(msg)
		return m, nil

	case elapsedTickMsg:
		if m.working {
			return m, m.scheduleElapsed()
		}
		return m, nil

	case modelsLoadedMsg:
		m.textModelOpts = msg.text
		m.imageModelOpts = msg.image
		if m.engine.Settings.Settings.TextModel == "" {
			m.engine.Settings.SetTextModel(BestDefaultTextModel(m.textModelOpts))
		}
		return m, nil

	case ipDetectedMsg:
		m.publicIP = string(msg)
		return m, nil

	case generateDoneMsg:
		m.working = false
		m.progress = Progress{}
		if msg.err != nil {
			m.logger.Warn("task ended in error")
			if m.engine.State().NeedCredential {
				m.openCredential()
			}
		} else if msg.content == nil {
			m.status = "Generación cancelada."
		}
		m.refreshViewport()
		return m, nil

	case newsDoneMsg:
		m.working = false
		if msg.err == nil && msg.news != nil {
			m.status = "📰 Noticia recuperada."
		}
		m.refreshViewport()
		return m, nil

	case suggestDoneMsg:
		m.working = false
		if msg.err != nil {
			m.refreshViewport()
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.topics))
		for _, t := range msg.topics {
			items = append(items, choiceItem{label: t, value: t})
		}
		m.list.SetItems(items)
		m.list.Select(0)
		m.mode = ui.ModeSuggestions
		return m, nil

	case hintsDoneMsg:
		m.working = false
		if msg.err == nil {
			m.status = "🎨 Detalles de imagen actualizados."
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if handled, next, cmd := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case ui.ModePicker, ui.ModeHistory, ui.ModeSuggestions:
		m.list, cmd = m.list.Update(msg)
	case ui.ModeGate, ui.ModeMain, ui.ModeCredential, ui.ModeInstruction:
		var taCmd, vpCmd tea.Cmd
		m.textarea, taCmd = m.textarea.Update(msg)
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmd = tea.Batch(taCmd, vpCmd)
	}

	if m.working {
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmd = tea.Batch(cmd, spinnerCmd)
	}
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {

	case "ctrl+c":
		return true, m, tea.Quit

	case "esc":
		switch m.mode {
		case ui.ModePicker, ui.ModeHistory, ui.ModeSuggestions, ui.ModeCredential, ui.ModeInstruction:
			m.backToMain()
			return true, m, nil
		}
		return false, m, nil

	case "enter":
		return m.handleEnter()
	}

	if m.mode == ui.ModeMain {
		return m.handleMainShortcut(msg)
	}
	if m.mode == ui.ModeHistory {
		switch msg.String() {
		case "backspace":
			if item, ok := m.list.SelectedItem().(historyItem); ok {
				m.engine.History.Delete(item.entry.ID)
				m.openHistory()
			}
			return true, m, nil
		case "ctrl+x":
			m.engine.History.Clear()
			m.backToMain()
			m.status = "🗑️ Historial vaciado."
			return true, m, nil
		}
	}
	return false, m, nil
}

func (m *model) handleMainShortcut(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {

	case "tab":
		m.platform = nextPlatform(m.platform)
		return true, m, nil

	case "ctrl+g":
		m.syncTopic()
		return m.startTask("generando contenido", func() tea.Msg {
			content, err := m.engine.GeneratePost(m.ctx, m.platform)
			return generateDoneMsg{content: content, err: err}
		})

	case "ctrl+n":
		m.syncTopic()
		return m.startTask("buscando noticias", func() tea.Msg {
			news, err := m.engine.FetchNews(m.ctx)
			return newsDoneMsg{news: news, err: err}
		})

	case "ctrl+t":
		m.syncTopic()
		return m.startTask("sugiriendo temas", func() tea.Msg {
			topics, err := m.engine.SuggestTopics(m.ctx)
			return suggestDoneMsg{topics: topics, err: err}
		})

	case "ctrl+y":
		m.syncTopic()
		return m.startTask("sugiriendo detalles", func() tea.Msg {
			hint, err := m.engine.SuggestImageHints(m.ctx)
			return hintsDoneMsg{hint: hint, err: err}
		})

	case "ctrl+r":
		return m.startTask("reescribiendo texto", func() tea.Msg {
			content, err := m.engine.RegenerateCopy(m.ctx)
			return generateDoneMsg{content: content, err: err}
		})

	case "ctrl+o":
		return m.startTask("regenerando imagen", func() tea.Msg {
			content, err := m.engine.RegenerateImage(m.ctx)
			return generateDoneMsg{content: content, err: err}
		})

	case "ctrl+b":
		return m.startTask("generando titular", func() tea.Msg {
			content, err := m.engine.GenerateHeadline(m.ctx)
			return generateDoneMsg{content: content, err: err}
		})

	case "ctrl+e":
		m.openInstruction(instrEditText, "✏️ Editar texto — instrucción")
		return true, m, nil

	case "ctrl+x":
		m.openInstruction(instrEditImage, "🖌️ Editar imagen — instrucción")
		return true, m, nil

	case "ctrl+l":
		m.openHistory()
		return true, m, nil

	case "ctrl+k":
		m.openCredential()
		return true, m, nil

	case "ctrl+p":
		m.openPicker(pickMenu)
		return true, m, nil

	case "ctrl+u":
		if content := m.engine.Content(); content != nil {
			if err := CopyToClipboard(content.Copy); err != nil {
				m.status = "❌ No se pudo copiar al portapapeles."
			} else {
				m.status = "📋 Texto copiado al portapapeles."
			}
		}
		return true, m, nil

	case "ctrl+s":
		if content := m.engine.Content(); content != nil && content.ImageBase64 != "" {
			path, err := SaveImage(".", content.ImageBase64, content.ImageMIME)
			if err != nil {
				m.status = "❌ No se pudo guardar la imagen."
			} else {
				m.status = "💾 Imagen guardada en " + path
			}
		}
		return true, m, nil

	case "ctrl+f":
		if content := m.engine.Content(); content != nil {
			if err := OpenShareURL(m.platform, ToPlain(content.Copy)); err != nil {
				m.status = "❌ " + err.Error()
			} else {
				m.status = "🌐 Abriendo " + string(m.platform) + "..."
			}
		}
		return true, m, nil

	case "ctrl+a":
		if m.working {
			m.engine.Abort()
			m.status = "⏹️ Cancelando..."
		}
		return true, m, nil
	}
	return false, m, nil
}

func (m *model) handleEnter() (bool, tea.Model, tea.Cmd) {
	switch m.mode {

	case ui.ModeGate:
		word := strings.TrimSpace(m.textarea.Value())
		if word == m.accessWord {
			m.gateErr = ""
			m.textarea.Reset()
			m.textarea.Placeholder = "Escribe tu tema aquí..."
			m.textarea.SetValue(m.engine.Settings.Settings.Topic)
			m.mode = ui.ModeMain
			m.logger.Info("access granted")
		} else {
			m.gateErr = "Palabra incorrecta."
			m.textarea.Reset()
		}
		return true, m, nil

	case ui.ModeCredential:
		key := strings.TrimSpace(m.textarea.Value())
		if key != "" {
			m.engine.Settings.SetAPIKey(key)
			m.engine.CredentialStored()
			m.engine.ClearError()
			m.status = "🔑 Clave guardada."
		}
		m.backToMain()
		return true, m, m.loadModelsCmd()

	case ui.ModeInstruction:
		instruction := strings.TrimSpace(m.textarea.Value())
		m.backToMain()
		if instruction == "" {
			return true, m, nil
		}
		kind := m.instruction
		if kind == instrEditImage {
			return m.startTask("editando imagen", func() tea.Msg {
				content, err := m.engine.EditImage(m.ctx, instruction)
				return generateDoneMsg{content: content, err: err}
			})
		}
		return m.startTask("editando texto", func() tea.Msg {
			content, err := m.engine.EditText(m.ctx, instruction)
			return generateDoneMsg{content: content, err: err}
		})

	case ui.ModeSuggestions:
		if item, ok := m.list.SelectedItem().(choiceItem); ok {
			m.engine.Settings.SetTopic(item.value)
			m.textarea.SetValue(item.value)
			m.status = "💡 Tema aplicado."
		}
		m.backToMain()
		return true, m, nil

	case ui.ModeHistory:
		if item, ok := m.list.SelectedItem().(historyItem); ok {
			m.engine.RecoverFromHistory(item.entry)
			m.textarea.SetValue(item.entry.Topic)
			m.status = "♻️ Generación recuperada."
		}
		m.backToMain()
		m.refreshViewport()
		return true, m, nil

	case ui.ModePicker:
		return m.applyPicker()
	}
	return false, m, nil
}

// startTask launches an engine call on its own goroutine and starts the
// spinner plus the elapsed ticker.
func (m *model) startTask(label string, task func() tea.Msg) (bool, tea.Model, tea.Cmd) {
	if m.working {
		m.status = "⏳ Ya hay una operación en curso."
		return true, m, nil
	}
	m.working = true
	m.workingText = label
	m.status = ""
	m.engine.ClearError()
	return true, m, tea.Batch(task, m.spinner.Tick, m.scheduleElapsed())
}

func (m *model) scheduleElapsed() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return elapsedTickMsg(t)
	})
}

func (m *model) syncTopic() {
	m.engine.Settings.SetTopic(strings.TrimSpace(m.textarea.Value()))
}

func (m *model) backToMain() {
	m.mode = ui.ModeMain
	m.picker = pickNone
	m.textarea.Reset()
	m.textarea.Placeholder = "Escribe tu tema aquí..."
	m.textarea.SetValue(m.engine.Settings.Settings.Topic)
	m.textarea.Focus()
}

func nextPlatform(p Platform) Platform {
	for i, candidate := range AllPlatforms {
		if candidate == p {
			return AllPlatforms[(i+1)%len(AllPlatforms)]
		}
	}
	return AllPlatforms[0]
}
