package studio

import (
	"encoding/base64"
	"os"
	"strings"
	"testing"
)

func TestShareURL(t *testing.T) {
	text := "Hola & adiós"
	twitter := ShareURL(PlatformTwitter, text)
	if !strings.HasPrefix(twitter, "https://twitter.com/intent/tweet?text=") {
		t.Errorf("twitter url = %q", twitter)
	}
	if strings.Contains(twitter, "&a") && strings.Contains(twitter, "adiós") {
		t.Error("text not escaped")
	}
	if ShareURL(PlatformBlog, text) != "" {
		t.Error("blog has no share target")
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	payload := base64.StdEncoding.EncodeToString([]byte("imagen"))

	path, err := SaveImage(dir, payload, "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "imagen" {
		t.Errorf("content = %q", data)
	}
}

func TestSaveImageRejectsBadBase64(t *testing.T) {
	if _, err := SaveImage(t.TempDir(), "%%%no-base64%%%", "image/png"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestExtensionFor(t *testing.T) {
	cases := map[string]string{
		"image/jpeg": "jpg",
		"image/webp": "webp",
		"image/png":  "png",
		"":           "png",
	}
	for mime, want := range cases {
		if got := extensionFor(mime); got != want {
			t.Errorf("extensionFor(%q) = %q, want %q", mime, got, want)
		}
	}
}
