package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const Logo = `
██████╗ ███████╗██████╗  █████╗  ██████╗████████╗ ██████╗ ██████╗
██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝╚══██╔══╝██╔═══██╗██╔══██╗
██████╔╝█████╗  ██║  ██║███████║██║        ██║   ██║   ██║██████╔╝
██╔══██╗██╔══╝  ██║  ██║██╔══██║██║        ██║   ██║   ██║██╔══██╗
██║  ██║███████╗██████╔╝██║  ██║╚██████╗   ██║   ╚██████╔╝██║  ██║
╚═╝  ╚═╝╚══════╝╚═════╝ ╚═╝  ╚═╝ ╚═════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝
            E S T U D I O  ·  D E  ·  C O N T E N I D O
`

// Render generates the full UI string based on the provided state.
func Render(s State, styles Styles) string {
	header := renderHeader(s, styles)
	body := renderBody(s, styles)
	footer := renderFooter(s, styles)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func renderHeader(s State, styles Styles) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F2A0FF")).Bold(true).
		Background(lipgloss.Color("#000000")).UnsetBackground()
	subtitle := styles.Header.Render("Redactor BarnaIA " + s.Version)
	styledLogo := logoStyle.Render(Logo)

	return lipgloss.JoinVertical(lipgloss.Left, styledLogo, subtitle)
}

func renderFooter(s State, styles Styles) string {
	help := "ctrl+c: salir"
	switch s.Mode {
	case ModeMain:
		help += " | ctrl+g: generar | tab: plataforma | ctrl+p: ajustes | ctrl+l: historial | ctrl+k: clave"
	case ModePicker, ModeHistory, ModeSuggestions:
		help += " | enter: elegir | esc: volver"
	case ModeCredential, ModeInstruction:
		help += " | enter: confirmar | esc: cancelar"
	}

	var right []string
	if s.PublicIP != "" {
		right = append(right, "IP "+s.PublicIP)
	}
	if s.Tokens != "" {
		right = append(right, s.Tokens+" tokens")
	}
	if s.Working && s.Elapsed > 0 {
		right = append(right, fmt.Sprintf("%.1fs", s.Elapsed.Seconds()))
	}
	line := styles.Footer.Render(help)
	if len(right) > 0 {
		line += styles.Footer.Render("  ·  " + strings.Join(right, " · "))
	}
	return line
}

func renderBody(s State, styles Styles) string {
	switch s.Mode {
	case ModeGate:
		return renderGate(s, styles)
	case ModeMain:
		return renderMain(s, styles)
	case ModePicker, ModeSuggestions:
		return renderPicker(s, styles)
	case ModeHistory:
		return renderHistory(s, styles)
	case ModeCredential:
		return renderCredential(s, styles)
	case ModeInstruction:
		return renderInstruction(s, styles)
	default:
		return ""
	}
}

func renderGate(s State, styles Styles) string {
	lines := []string{
		styles.ListHeader.Render("🔒 Acceso restringido"),
		styles.Subtle.Render("Introduce la palabra de acceso para continuar."),
		s.TextArea.View(),
	}
	if s.GateError != "" {
		lines = append(lines, styles.Error.Render("❌ "+s.GateError))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMain(s State, styles Styles) string {
	var statusItems []string
	statusItems = append(statusItems, styles.Status.Render("PLATAFORMA: "+strings.ToUpper(s.Platform)))
	statusItems = append(statusItems, styles.StatusRight.Render(s.ModelsLine))
	status := lipgloss.JoinHorizontal(lipgloss.Top, statusItems...)

	metaLines := []string{
		styles.Subtitle.Render(s.SettingsLine),
	}
	if s.NewsLine != "" {
		metaLines = append(metaLines, styles.Subtle.Render("📰 "+s.NewsLine))
	}
	if s.HistoryCount > 0 {
		metaLines = append(metaLines, styles.Subtle.Render(fmt.Sprintf("🗂️ %d en historial", s.HistoryCount)))
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, metaLines...),
		s.Viewport.View(),
		status,
		renderWorking(s, styles),
		renderNotices(s, styles),
		s.TextArea.View(),
	)
	return styles.Panel.Render(mainView)
}

func renderWorking(s State, styles Styles) string {
	if !s.Working {
		return ""
	}
	label := s.WorkingText
	if s.ProgressMsg != "" {
		label = fmt.Sprintf("%d%% %s", s.ProgressPct, s.ProgressMsg)
	}
	return styles.Working.Render(fmt.Sprintf("Redactor %s %s", s.Spinner.View(), label))
}

func renderNotices(s State, styles Styles) string {
	var lines []string
	if s.ErrorText != "" {
		lines = append(lines, styles.Error.Render("❌ "+s.ErrorText))
	}
	if s.StatusText != "" {
		lines = append(lines, styles.Success.Render(s.StatusText))
	}
	if len(lines) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPicker(s State, styles Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ListHeader.Render(s.PickerTitle),
		styles.List.Render(s.List.View()),
	)
}

func renderHistory(s State, styles Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ListHeader.Render("🗂️ Historial de generaciones"),
		styles.Subtle.Render("enter: recuperar | backspace: borrar | ctrl+x: vaciar"),
		styles.List.Render(s.List.View()),
	)
}

func renderCredential(s State, styles Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ListHeader.Render("🔑 API Key de Gemini"),
		styles.Subtle.Render("La clave se guarda localmente y no se comparte."),
		s.TextArea.View(),
	)
}

func renderInstruction(s State, styles Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ListHeader.Render(s.PickerTitle),
		s.TextArea.View(),
	)
}
