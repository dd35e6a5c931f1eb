package studio

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Progress milestones of the full pipeline.
const (
	msgGeneratingText  = "Generando texto..."
	msgAddingHeadline  = "Añadiendo titular..."
	msgGeneratingImage = "Generando imagen..."
	msgCompleted       = "¡Completado!"
)

// GeneratePost runs the full pipeline for one platform: copy, optional
// headline, image, then a history entry. Any step failure ends the run;
// only a fully successful run reaches history.
func (e *Engine) GeneratePost(ctx context.Context, platform Platform) (*GeneratedContent, error) {
	s := e.Settings.Settings
	if strings.TrimSpace(s.Topic) == "" {
		return nil, e.fail(OpGenerate, ErrNoTopic, "generar texto")
	}

	run := e.begin(OpGenerate)
	e.report(run, 10, msgGeneratingText)

	text, err := e.text.GenerateText(ctx, BuildPostPrompt(platform, s), textOptions(s))
	if err != nil {
		return nil, e.fail(OpGenerate, err, "generar texto")
	}
	e.addTokens(text.Tokens)
	copyText := NormalizeCopy(text.Text)
	if !e.runAlive(run) {
		e.finish(OpGenerate)
		return nil, nil
	}

	if s.HeadlineEnabled && platform != PlatformBlog {
		e.report(run, 30, msgAddingHeadline)
		headline, err := e.text.GenerateText(ctx, BuildHeadlinePrompt(copyText, s.TextTone, s.Personas), TextOptions{Model: s.TextModel})
		if err != nil {
			return nil, e.fail(OpGenerate, err, "al generar el titular")
		}
		e.addTokens(headline.Tokens)
		if hook := strings.TrimSpace(headline.Text); hook != "" {
			copyText = ToBold(hook) + "\n\n" + copyText
		}
		if !e.runAlive(run) {
			e.finish(OpGenerate)
			return nil, nil
		}
	}

	e.report(run, 60, msgGeneratingImage)
	prompt, aspect := BuildImagePrompt(s, platform)
	image, err := e.imageProviderFor(s.ImageModel).GenerateImage(ctx, prompt, ImageConfig{
		Model:       s.ImageModel,
		AspectRatio: aspect,
		MIMEType:    s.ImageFormat,
	})
	if err != nil {
		return nil, e.fail(OpGenerate, err, "al generar la imagen")
	}
	e.addTokens(image.Tokens)
	if !e.runAlive(run) {
		e.finish(OpGenerate)
		return nil, nil
	}

	content := &GeneratedContent{
		Platform:    platform,
		Copy:        copyText,
		ImageBase64: image.Base64,
		ImageMIME:   image.MIME,
	}
	e.setContent(content)
	e.History.Add(s.Topic, copyText, image.Base64, image.MIME)
	e.report(run, 100, msgCompleted)
	e.finish(OpGenerate)
	return content, nil
}

// RegenerateCopy rewrites only the text of the working slot. History is
// untouched.
func (e *Engine) RegenerateCopy(ctx context.Context) (*GeneratedContent, error) {
	current := e.Content()
	if current == nil {
		return nil, e.fail(OpRegenCopy, ErrNothingToRegenerate, "generar texto")
	}
	s := e.Settings.Settings

	run := e.begin(OpRegenCopy)
	text, err := e.text.GenerateText(ctx, BuildPostPrompt(current.Platform, s), textOptions(s))
	if err != nil {
		return nil, e.fail(OpRegenCopy, err, "generar texto")
	}
	e.addTokens(text.Tokens)
	if !e.runAlive(run) {
		e.finish(OpRegenCopy)
		return nil, nil
	}

	next := *current
	next.Copy = NormalizeCopy(text.Text)
	e.setContent(&next)
	e.finish(OpRegenCopy)
	return &next, nil
}

// RegenerateImage replaces only the image of the working slot. History
// is untouched.
func (e *Engine) RegenerateImage(ctx context.Context) (*GeneratedContent, error) {
	current := e.Content()
	if current == nil {
		return nil, e.fail(OpRegenImage, ErrNothingToRegenerate, "al generar la imagen")
	}
	s := e.Settings.Settings

	run := e.begin(OpRegenImage)
	prompt, aspect := BuildImagePrompt(s, current.Platform)
	image, err := e.imageProviderFor(s.ImageModel).GenerateImage(ctx, prompt, ImageConfig{
		Model:       s.ImageModel,
		AspectRatio: aspect,
		MIMEType:    s.ImageFormat,
	})
	if err != nil {
		return nil, e.fail(OpRegenImage, err, "al generar la imagen")
	}
	e.addTokens(image.Tokens)
	if !e.runAlive(run) {
		e.finish(OpRegenImage)
		return nil, nil
	}

	next := *current
	next.ImageBase64 = image.Base64
	next.ImageMIME = image.MIME
	e.setContent(&next)
	e.finish(OpRegenImage)
	return &next, nil
}

// GenerateHeadline prepends a styled hook to the current copy.
func (e *Engine) GenerateHeadline(ctx context.Context) (*GeneratedContent, error) {
	current := e.Content()
	if current == nil || strings.TrimSpace(current.Copy) == "" {
		return nil, e.fail(OpHeadline, ErrNoCopyForHeadline, "al generar el titular")
	}
	s := e.Settings.Settings

	run := e.begin(OpHeadline)
	headline, err := e.text.GenerateText(ctx, BuildHeadlinePrompt(current.Copy, s.TextTone, s.Personas), TextOptions{Model: s.TextModel})
	if err != nil {
		return nil, e.fail(OpHeadline, err, "al generar el titular")
	}
	e.addTokens(headline.Tokens)
	if !e.runAlive(run) {
		e.finish(OpHeadline)
		return nil, nil
	}

	next := *current
	if hook := strings.TrimSpace(headline.Text); hook != "" {
		next.Copy = ToBold(hook) + "\n\n" + current.Copy
	}
	e.setContent(&next)
	e.finish(OpHeadline)
	return &next, nil
}

// FetchNews retrieves the most relevant recent headline through search
// grounding and parses it out of the model's JSON reply.
func (e *Engine) FetchNews(ctx context.Context) (*FetchedNews, error) {
	s := e.Settings.Settings

	run := e.begin(OpNews)
	result, err := e.text.GenerateText(ctx, BuildNewsPrompt(s.Topic, s.Personas), TextOptions{
		Model:      s.TextModel,
		SystemHint: "Eres un asistente de noticias JSON.",
		WebSearch:  true,
	})
	if err != nil {
		return nil, e.fail(OpNews, err, "al buscar noticias")
	}
	e.addTokens(result.Tokens)
	if !e.runAlive(run) {
		e.finish(OpNews)
		return nil, nil
	}

	raw := ExtractJSON(result.Text)
	var news FetchedNews
	if err := json.Unmarshal([]byte(raw), &news); err != nil {
		// Some models answer with a one-element array.
		var list []FetchedNews
		if err := json.Unmarshal([]byte(raw), &list); err != nil || len(list) == 0 {
			return nil, e.fail(OpNews, ErrMalformedAIResponse, "al buscar noticias")
		}
		news = list[0]
	}
	if news.Title == "" {
		return nil, e.fail(OpNews, fmt.Errorf("formato de noticia inesperado"), "al buscar noticias")
	}

	e.setNews(&news)
	e.finish(OpNews)
	return &news, nil
}

// SuggestTopics returns 3-5 related topics for the current one.
func (e *Engine) SuggestTopics(ctx context.Context) ([]string, error) {
	s := e.Settings.Settings
	if strings.TrimSpace(s.Topic) == "" {
		return nil, e.fail(OpSuggestTopics, ErrNoTopic, "al sugerir temas")
	}

	run := e.begin(OpSuggestTopics)
	result, err := e.text.GenerateText(ctx, BuildTopicSuggestionsPrompt(s.Topic), TextOptions{
		Model:    s.TextModel,
		JSONOnly: true,
	})
	if err != nil {
		return nil, e.fail(OpSuggestTopics, err, "al sugerir temas")
	}
	e.addTokens(result.Tokens)
	if !e.runAlive(run) {
		e.finish(OpSuggestTopics)
		return nil, nil
	}

	var topics []string
	if err := json.Unmarshal([]byte(ExtractJSON(result.Text)), &topics); err != nil {
		return nil, e.fail(OpSuggestTopics, ErrMalformedAIResponse, "al sugerir temas")
	}
	e.finish(OpSuggestTopics)
	return topics, nil
}

// SuggestImageHints asks for a detailed visual description and stores
// it as the image hints setting.
func (e *Engine) SuggestImageHints(ctx context.Context) (string, error) {
	s := e.Settings.Settings
	if strings.TrimSpace(s.Topic) == "" {
		return "", e.fail(OpSuggestHints, ErrNoTopic, "al sugerir detalles")
	}

	run := e.begin(OpSuggestHints)
	result, err := e.text.GenerateText(ctx, BuildImageHintsPrompt(s), TextOptions{
		Model:    s.TextModel,
		JSONOnly: true,
	})
	if err != nil {
		return "", e.fail(OpSuggestHints, err, "al sugerir detalles")
	}
	e.addTokens(result.Tokens)
	if !e.runAlive(run) {
		e.finish(OpSuggestHints)
		return "", nil
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(ExtractJSON(result.Text)), &payload); err != nil || payload.Text == "" {
		return "", e.fail(OpSuggestHints, ErrMalformedAIResponse, "al sugerir detalles")
	}

	e.Settings.SetImageHints(payload.Text)
	e.finish(OpSuggestHints)
	return payload.Text, nil
}

// EditText rewrites the current copy following a free-form instruction.
func (e *Engine) EditText(ctx context.Context, instruction string) (*GeneratedContent, error) {
	current := e.Content()
	if current == nil {
		return nil, e.fail(OpEdit, ErrNothingToRegenerate, "generar texto")
	}
	s := e.Settings.Settings

	run := e.begin(OpEdit)
	result, err := e.text.GenerateText(ctx, BuildEditTextPrompt(ToPlain(current.Copy), instruction), textOptions(s))
	if err != nil {
		return nil, e.fail(OpEdit, err, "generar texto")
	}
	e.addTokens(result.Tokens)
	if !e.runAlive(run) {
		e.finish(OpEdit)
		return nil, nil
	}

	next := *current
	next.Copy = NormalizeCopy(result.Text)
	e.setContent(&next)
	e.finish(OpEdit)
	return &next, nil
}

// EditImage reworks the current image per an instruction.
func (e *Engine) EditImage(ctx context.Context, instruction string) (*GeneratedContent, error) {
	current := e.Content()
	if current == nil || current.ImageBase64 == "" {
		return nil, e.fail(OpEdit, ErrNothingToRegenerate, "al editar la imagen")
	}

	run := e.begin(OpEdit)
	image, err := e.editor.EditImage(ctx, current.ImageBase64, current.ImageMIME, instruction)
	if err != nil {
		return nil, e.fail(OpEdit, err, "al editar la imagen")
	}
	e.addTokens(image.Tokens)
	if !e.runAlive(run) {
		e.finish(OpEdit)
		return nil, nil
	}

	next := *current
	next.ImageBase64 = image.Base64
	next.ImageMIME = image.MIME
	e.setContent(&next)
	e.finish(OpEdit)
	return &next, nil
}

// RecoverFromHistory repopulates the working slot from a saved entry.
func (e *Engine) RecoverFromHistory(entry HistoryEntry) *GeneratedContent {
	copyText, imageBase64, mimeType := entry.Recover()
	content := &GeneratedContent{
		Platform:    PlatformLinkedIn,
		Copy:        copyText,
		ImageBase64: imageBase64,
		ImageMIME:   mimeType,
	}
	e.setContent(content)
	e.Settings.SetTopic(entry.Topic)
	e.logger.Info("history entry recovered", zap.String("id", entry.ID))
	return content
}
