package studio

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const generateEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// GeminiProvider talks to the Gemini API for text, multimodal image
// generation and editing, and model listing. A fresh client is opened
// per call so a credential change takes effect immediately. Search
// grounding is not expressible through the client library, so those
// calls go over the REST surface directly.
type GeminiProvider struct {
	keyFn          func() string
	http           *http.Client
	searchEndpoint string
	logger         *zap.Logger
}

// NewGeminiProvider builds a provider that resolves the credential
// through keyFn on every call.
func NewGeminiProvider(keyFn func() string, logger *zap.Logger) *GeminiProvider {
	return &GeminiProvider{
		keyFn:          keyFn,
		http:           &http.Client{Timeout: 120 * time.Second},
		searchEndpoint: generateEndpoint,
		logger:         logger,
	}
}

func (g *GeminiProvider) client(ctx context.Context) (*genai.Client, error) {
	key := g.keyFn()
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return genai.NewClient(ctx, option.WithAPIKey(key))
}

func tokenCount(resp *genai.GenerateContentResponse) *int32 {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	n := resp.UsageMetadata.TotalTokenCount
	return &n
}

// GenerateText runs a single text completion.
func (g *GeminiProvider) GenerateText(ctx context.Context, prompt string, opts TextOptions) (TextResult, error) {
	if opts.WebSearch {
		return g.generateWithSearch(ctx, prompt, opts)
	}

	client, err := g.client(ctx)
	if err != nil {
		return TextResult{}, err
	}
	defer client.Close()

	model := client.GenerativeModel(opts.Model)
	if opts.UseSampling {
		model.SetTemperature(opts.Temperature)
		model.SetTopP(opts.TopP)
		model.SetTopK(opts.TopK)
	}
	if opts.JSONOnly {
		model.GenerationConfig.ResponseMIMEType = "application/json"
	}
	if opts.SystemHint != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(opts.SystemHint)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return TextResult{}, err
	}

	text := collectText(resp)
	if text == "" {
		return TextResult{}, fmt.Errorf("la respuesta de la API no fue un texto válido")
	}
	g.logger.Debug("text generated", zap.String("model", opts.Model), zap.Int("chars", len(text)))
	return TextResult{Text: text, Tokens: tokenCount(resp)}, nil
}

type searchRequest struct {
	Contents          []searchContent `json:"contents"`
	Tools             []searchTool    `json:"tools"`
	SystemInstruction *searchContent  `json:"systemInstruction,omitempty"`
}

type searchContent struct {
	Parts []searchPart `json:"parts"`
}

type searchPart struct {
	Text string `json:"text"`
}

type searchTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

// generateWithSearch issues a generateContent call with the
// google_search tool over REST.
func (g *GeminiProvider) generateWithSearch(ctx context.Context, prompt string, opts TextOptions) (TextResult, error) {
	key := g.keyFn()
	if key == "" {
		return TextResult{}, ErrMissingAPIKey
	}

	request := searchRequest{
		Contents: []searchContent{{Parts: []searchPart{{Text: prompt}}}},
		Tools:    []searchTool{{}},
	}
	if opts.SystemHint != "" {
		request.SystemInstruction = &searchContent{Parts: []searchPart{{Text: opts.SystemHint}}}
	}
	payload, err := json.Marshal(request)
	if err != nil {
		return TextResult{}, err
	}

	url := fmt.Sprintf(g.searchEndpoint, opts.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return TextResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", key)

	resp, err := g.http.Do(req)
	if err != nil {
		return TextResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return TextResult{}, err
	}

	if resp.StatusCode != http.StatusOK {
		// The status code stays in the message so the classifier can
		// recognize quota and not-found failures.
		msg := gjson.GetBytes(body, "error.message").String()
		if msg == "" {
			msg = string(body)
		}
		g.logger.Warn("grounded call failed", zap.Int("status", resp.StatusCode), zap.String("model", opts.Model))
		return TextResult{}, fmt.Errorf("generateContent %d: %s", resp.StatusCode, msg)
	}

	var b strings.Builder
	for _, part := range gjson.GetBytes(body, "candidates.0.content.parts").Array() {
		b.WriteString(part.Get("text").String())
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return TextResult{}, fmt.Errorf("la respuesta de la API no fue un texto válido")
	}

	var total *int32
	if usage := gjson.GetBytes(body, "usageMetadata.totalTokenCount"); usage.Exists() {
		n := int32(usage.Int())
		total = &n
	}
	g.logger.Debug("grounded text generated", zap.String("model", opts.Model), zap.Int("chars", len(text)))
	return TextResult{Text: text, Tokens: total}, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// GenerateImage produces an image through the multimodal generateContent
// surface. The aspect ratio has no dedicated knob on this path, so the
// framing hint already folded into the prompt carries it.
func (g *GeminiProvider) GenerateImage(ctx context.Context, prompt string, cfg ImageConfig) (ImageResult, error) {
	client, err := g.client(ctx)
	if err != nil {
		return ImageResult{}, err
	}
	defer client.Close()

	model := client.GenerativeModel(cfg.Model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return ImageResult{}, err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				mime := blob.MIMEType
				if mime == "" {
					mime = string(cfg.MIMEType)
				}
				g.logger.Debug("image generated", zap.String("model", cfg.Model), zap.String("mime", mime))
				return ImageResult{
					Base64: base64.StdEncoding.EncodeToString(blob.Data),
					MIME:   mime,
					Tokens: tokenCount(resp),
				}, nil
			}
		}
	}
	return ImageResult{}, ErrEmptyImageResponse
}

// editImageModel supports multimodal input plus edit instructions;
// generation-only models do not, so edits are pinned here.
const editImageModel = "gemini-2.5-flash-image"

// EditImage sends the current image plus an instruction and returns the
// reworked image. When the model answers with text instead of an image,
// that text is the failure reason.
func (g *GeminiProvider) EditImage(ctx context.Context, base64Data, mimeType, instruction string) (ImageResult, error) {
	client, err := g.client(ctx)
	if err != nil {
		return ImageResult{}, err
	}
	defer client.Close()

	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return ImageResult{}, fmt.Errorf("imagen actual ilegible: %w", err)
	}

	model := client.GenerativeModel(editImageModel)
	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(BuildEditImagePrompt(instruction)),
	)
	if err != nil {
		return ImageResult{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ImageResult{}, fmt.Errorf("respuesta vacía")
	}

	var textFallback string
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Blob:
			if len(p.Data) > 0 {
				mime := p.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return ImageResult{
					Base64: base64.StdEncoding.EncodeToString(p.Data),
					MIME:   mime,
					Tokens: tokenCount(resp),
				}, nil
			}
		case genai.Text:
			if textFallback == "" {
				textFallback = strings.TrimSpace(string(p))
			}
		}
	}
	if textFallback != "" {
		return ImageResult{}, fmt.Errorf("%s", textFallback)
	}
	return ImageResult{}, fmt.Errorf("no se devolvió una imagen editada")
}

// ListModels enumerates the models the account can reach. A missing
// credential yields an empty listing rather than an error so the UI can
// fall back to the curated defaults silently.
func (g *GeminiProvider) ListModels(ctx context.Context) ([]ListedModel, error) {
	key := g.keyFn()
	if key == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var listed []ListedModel
	it := client.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		listed = append(listed, ListedModel{
			Name:        info.Name,
			DisplayName: info.DisplayName,
			Methods:     info.SupportedGenerationMethods,
		})
	}
	g.logger.Debug("models listed", zap.Int("count", len(listed)))
	return listed, nil
}
