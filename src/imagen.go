package studio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const imagenEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:predict"

// ImagenProvider drives the dedicated image-generation family over its
// REST predict surface, which supports explicit aspect ratio and output
// mime type. Model ids containing "imagen" are routed here.
type ImagenProvider struct {
	keyFn  func() string
	http   *http.Client
	logger *zap.Logger
}

func NewImagenProvider(keyFn func() string, logger *zap.Logger) *ImagenProvider {
	return &ImagenProvider{
		keyFn:  keyFn,
		http:   &http.Client{Timeout: 120 * time.Second},
		logger: logger,
	}
}

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMimeType string `json:"outputMimeType"`
}

// GenerateImage issues one predict call and returns the first sample.
// The predict surface reports no token usage.
func (p *ImagenProvider) GenerateImage(ctx context.Context, prompt string, cfg ImageConfig) (ImageResult, error) {
	key := p.keyFn()
	if key == "" {
		return ImageResult{}, ErrMissingAPIKey
	}

	payload, err := json.Marshal(imagenRequest{
		Instances: []imagenInstance{{Prompt: prompt}},
		Parameters: imagenParameters{
			SampleCount:    1,
			AspectRatio:    cfg.AspectRatio,
			OutputMimeType: string(cfg.MIMEType),
		},
	})
	if err != nil {
		return ImageResult{}, err
	}

	url := fmt.Sprintf(imagenEndpoint, cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return ImageResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", key)

	resp, err := p.http.Do(req)
	if err != nil {
		return ImageResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ImageResult{}, err
	}

	if resp.StatusCode != http.StatusOK {
		// The status code stays in the message so the classifier can
		// recognize quota and not-found failures.
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = string(body)
		}
		p.logger.Warn("predict call failed", zap.Int("status", resp.StatusCode), zap.String("model", cfg.Model))
		return ImageResult{}, fmt.Errorf("predict %d: %s", resp.StatusCode, msg)
	}

	b64 := gjson.GetBytes(body, "predictions.0.bytesBase64Encoded").String()
	if b64 == "" {
		return ImageResult{}, ErrEmptyImageResponse
	}
	mime := gjson.GetBytes(body, "predictions.0.mimeType").String()
	if mime == "" {
		mime = string(cfg.MIMEType)
	}
	p.logger.Debug("image predicted", zap.String("model", cfg.Model), zap.String("aspect", cfg.AspectRatio))
	return ImageResult{Base64: b64, MIME: mime}, nil
}
