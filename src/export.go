package studio

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
)

// CopyToClipboard places the generated copy on the system clipboard.
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return "jpg"
	case "image/webp":
		return "webp"
	default:
		return "png"
	}
}

// SaveImage decodes the generated image and writes it into dir with a
// timestamped name. It returns the written path.
func SaveImage(dir, imageBase64, mimeType string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return "", fmt.Errorf("imagen ilegible: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("redactor_%s.%s", time.Now().Format("20060102_150405"), extensionFor(mimeType))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ShareURL builds the platform's compose page preloaded with the copy.
// Platforms without a text-prefill compose surface get their home page.
func ShareURL(platform Platform, text string) string {
	escaped := url.QueryEscape(text)
	switch platform {
	case PlatformTwitter:
		return "https://twitter.com/intent/tweet?text=" + escaped
	case PlatformLinkedIn:
		return "https://www.linkedin.com/feed/?shareActive=true&text=" + escaped
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?quote=" + escaped
	case PlatformInstagram:
		return "https://www.instagram.com/"
	default:
		return ""
	}
}

// OpenShareURL launches the system browser on the platform's compose
// page. Blog has no share target.
func OpenShareURL(platform Platform, text string) error {
	target := ShareURL(platform, text)
	if target == "" {
		return fmt.Errorf("la plataforma %s no tiene destino de publicación", platform)
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}
