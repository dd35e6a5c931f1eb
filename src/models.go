package studio

import (
	"sort"
	"strings"
)

// AppVersion is shown in the footer and the log preamble.
const AppVersion = "v25.12F"

// ModelOption pairs a model id with its display label.
type ModelOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DefaultImageModel is the factory image model selection.
const DefaultImageModel = "gemini-2.5-flash-image"

// Static fallbacks used until a dynamic listing succeeds, and merged in
// after one so the curated entries never disappear.
var (
	TextModelOptions = []ModelOption{
		{Value: "gemini-3-flash-preview", Label: "Gemini 3.0 Flash (Velocidad)"},
		{Value: "gemini-3-pro-preview", Label: "Gemini 3.0 Pro (Razonamiento)"},
		{Value: "gemini-2.5-flash", Label: "Gemini 2.5 Flash (General)"},
	}

	ImageModelOptions = []ModelOption{
		{Value: "gemini-2.5-flash-image", Label: "Gemini 2.5 Flash Image (Nano Banana)"},
		{Value: "gemini-3-pro-image-preview", Label: "Gemini 3.0 Pro Image (Alta Calidad)"},
		{Value: "imagen-4.0-generate-001", Label: "Imagen 4.0 (Generación Pura)"},
	}
)

// ChoiceOption labels a settings enum value for the pickers.
type ChoiceOption[T ~string] struct {
	Value T
	Label string
}

var VisualStyleOptions = []ChoiceOption[VisualStyle]{
	{StylePhotorealistic, "🖼️ Fotografía"},
	{StyleCinematic, "🎬 Cinemático"},
	{StyleDroneShot, "🚁 Vista de Dron"},
	{StyleMacroPhotography, "🔬 Macrofotografía"},
	{StyleInfographic, "📊 Infografía"},
	{StylePictogram, "🧩 Pictograma"},
	{StyleWatercolor, "💧 Acuarela Artística"},
	{StylePixelArt, "👾 Pixel Art"},
	{StyleRetroFuturism, "🚀 Retrofuturista"},
	{StyleAbstractExpressionism, "🎨 Expresionismo Abstracto"},
}

var TextToneOptions = []ChoiceOption[TextTone]{
	{ToneProfessional, "👔 Profesional"},
	{ToneInspirational, "✨ Inspirador"},
	{ToneApproachable, "🤗 Cercano"},
	{ToneTechnical, "⚙️ Técnico"},
	{ToneUrgent, "❗ Urgente"},
	{ToneCollaborative, "🤝 Colaborativo"},
}

var CreativityOptions = []ChoiceOption[CreativityLevel]{
	{CreativityLow, "📉 Bajo"},
	{CreativityMedium, "🎨 Medio"},
	{CreativityHigh, "🚀 Alto"},
}

var PersonaOptions = []ChoiceOption[Persona]{
	{PersonaMarketingExpert, "💼 Experto en Marketing"},
	{PersonaCybersecurityExpert, "🛡️ Experto en Ciberseguridad"},
	{PersonaAIBootcampEducator, "🎓 Formador BootCamp IA"},
	{PersonaFinanceExpert, "📈 Experto en Finanzas y Bolsa"},
	{PersonaVitagAppPlatform, "📹 Plataforma ViTAG.App"},
	{PersonaInnovator, "💡 Innovador"},
	{PersonaOpinionLeader, "👑 Líder de Opinión"},
	{PersonaCommunityManager, "🤝 Gestor de Comunidad"},
	{PersonaTechnicalWriter, "✍️ Redactor Técnico"},
	{PersonaStoryteller, "📖 Narrador de Historias"},
	{PersonaInfluencer, "✨ Influencer"},
	{PersonaHumanizedAI, "🤖✍️ IA Humanizada (Estilo Natural)"},
	{PersonaNeutral, "👤 Neutral (Sin Rol Específico)"},
}

var ImageFormatOptions = []ChoiceOption[ImageFormat]{
	{FormatJPEG, "JPEG"},
	{FormatPNG, "PNG"},
	{FormatWebP, "WebP"},
}

// ListedModel is one entry of a dynamic model listing, already stripped
// of the "models/" prefix.
type ListedModel struct {
	Name        string
	DisplayName string
	Methods     []string
}

func (m ListedModel) supports(method string) bool {
	for _, got := range m.Methods {
		if got == method {
			return true
		}
	}
	return false
}

// CategorizeModels splits a raw listing into text and image option
// lists with friendly labels, most capable first.
func CategorizeModels(listed []ListedModel) (textModels, imageModels []ModelOption) {
	for _, m := range listed {
		name := strings.TrimPrefix(m.Name, "models/")
		display := m.DisplayName
		if display == "" {
			display = name
		}

		isImage := strings.Contains(name, "image") || strings.Contains(name, "imagen")
		isGemini := strings.Contains(name, "gemini")

		label := display
		if isGemini {
			if strings.Contains(name, "pro") {
				label = display + " (Potente)"
			} else if strings.Contains(name, "flash") {
				label = display + " (Rápido)"
			}
		}

		switch {
		case isImage:
			if m.supports("generateContent") || m.supports("generateImages") || strings.Contains(name, "imagen") {
				imageModels = append(imageModels, ModelOption{Value: name, Label: label})
			}
		case isGemini:
			// Non-image gemini models are assumed text/multimodal.
			if m.supports("generateContent") {
				textModels = append(textModels, ModelOption{Value: name, Label: label})
			}
		}
	}
	sortModelOptions(textModels)
	sortModelOptions(imageModels)
	return textModels, imageModels
}

func modelScore(id string) int {
	score := 0
	if strings.Contains(id, "pro") {
		score += 2
	}
	if strings.Contains(id, "latest") {
		score++
	}
	return score
}

func sortModelOptions(opts []ModelOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		return modelScore(opts[i].Value) > modelScore(opts[j].Value)
	})
}

// MergeModelOptions keeps the dynamic listing first and appends any
// curated default not already present. An empty dynamic listing yields
// the defaults untouched.
func MergeModelOptions(dynamic, defaults []ModelOption) []ModelOption {
	if len(dynamic) == 0 {
		return defaults
	}
	merged := make([]ModelOption, len(dynamic), len(dynamic)+len(defaults))
	copy(merged, dynamic)
	for _, def := range defaults {
		found := false
		for _, m := range merged {
			if m.Value == def.Value {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, def)
		}
	}
	return merged
}

// BestDefaultTextModel picks the first option of the merged list, or
// the stable fallback when the list is empty.
func BestDefaultTextModel(opts []ModelOption) string {
	if len(opts) > 0 {
		return opts[0].Value
	}
	return "gemini-2.5-flash"
}

// LabelFor resolves a value to its label within opts, falling back to
// the raw value for selections the catalog no longer lists.
func LabelFor(opts []ModelOption, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
