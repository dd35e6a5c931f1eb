// path: cmd/redactor/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	studio "github.com/barnaia/redactor-studio/src"
)

func configDir() string {
	if dir := os.Getenv("REDACTOR_HOME"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "redactor-studio")
	}
	return ".redactor-studio"
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	home := configDir()
	if err := os.MkdirAll(home, 0o755); err != nil {
		fmt.Println("❌ No se pudo crear el directorio de configuración:", err)
		os.Exit(1)
	}

	logger := studio.NewFileLogger(filepath.Join(home, "redactor.log"))
	defer logger.Sync()

	store := studio.OpenStore(filepath.Join(home, "settings.json"), logger)
	settings := studio.NewSettingsStore(store)
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && settings.APIKey() == "" {
		settings.SetAPIKey(key)
	}

	keyFn := settings.APIKey
	gemini := studio.NewGeminiProvider(keyFn, logger)
	engine := studio.NewEngine(studio.EngineDeps{
		Text:     gemini,
		Multimod: gemini,
		Predict:  studio.NewImagenProvider(keyFn, logger),
		Editor:   gemini,
		Lister:   gemini,
		Settings: settings,
		History:  studio.NewHistory(store, logger),
		Logger:   logger,
	})

	m := studio.NewModel(ctx, engine, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.AttachProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
