package studio

// VisualStyle selects one of the fixed image style templates.
type VisualStyle string

const (
	StyleInfographic           VisualStyle = "infographic"
	StylePhotorealistic        VisualStyle = "photorealistic"
	StylePictogram             VisualStyle = "pictogram"
	StyleRetroFuturism         VisualStyle = "retroFuturism"
	StyleAbstractExpressionism VisualStyle = "abstractExpressionism"
	StylePixelArt              VisualStyle = "pixelArt"
	StyleWatercolor            VisualStyle = "watercolor"
	StyleCinematic             VisualStyle = "cinematic"
	StyleDroneShot             VisualStyle = "droneShot"
	StyleMacroPhotography      VisualStyle = "macroPhotography"
)

// TextTone adjusts the voice of generated copy.
type TextTone string

const (
	ToneProfessional  TextTone = "professional"
	ToneInspirational TextTone = "inspirational"
	ToneApproachable  TextTone = "approachable"
	ToneTechnical     TextTone = "technical"
	ToneUrgent        TextTone = "urgent"
	ToneCollaborative TextTone = "collaborative"
)

type CreativityLevel string

const (
	CreativityLow    CreativityLevel = "low"
	CreativityMedium CreativityLevel = "medium"
	CreativityHigh   CreativityLevel = "high"
)

// Persona is a stylistic lens blended into prompts. PersonaNeutral is
// mutually exclusive with every other persona.
type Persona string

const (
	PersonaNeutral             Persona = "neutral"
	PersonaCybersecurityExpert Persona = "cybersecurityExpert"
	PersonaVitagAppPlatform    Persona = "vitagAppPlatform"
	PersonaAIBootcampEducator  Persona = "aiBootcampEducator"
	PersonaInnovator           Persona = "innovator"
	PersonaInfluencer          Persona = "influencer"
	PersonaMarketingExpert     Persona = "marketingExpert"
	PersonaOpinionLeader       Persona = "opinionLeader"
	PersonaCommunityManager    Persona = "communityManager"
	PersonaTechnicalWriter     Persona = "technicalWriter"
	PersonaStoryteller         Persona = "storyteller"
	PersonaHumanizedAI         Persona = "humanizedAI"
	PersonaFinanceExpert       Persona = "financeExpert"
)

// ImageFormat is the requested output mime type for generated images.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "image/jpeg"
	FormatPNG  ImageFormat = "image/png"
	FormatWebP ImageFormat = "image/webp"
)

// Platform identifies a publishing target. The empty value means "no
// specific platform" and falls back to square framing.
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformBlog      Platform = "blog"
)

// AllPlatforms lists every publishing target in display order.
var AllPlatforms = []Platform{
	PlatformLinkedIn, PlatformTwitter, PlatformInstagram, PlatformFacebook, PlatformBlog,
}

// AdvancedSettings carries the raw sampling parameters forwarded to the
// text model.
type AdvancedSettings struct {
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"topP"`
	TopK        int32   `json:"topK"`
}

// GenerationSettings is the immutable snapshot handed to the engine and
// prompt builders on every call. The TUI owns the mutable copy and
// persists each change through SettingsStore.
type GenerationSettings struct {
	Topic            string
	VisualStyle      VisualStyle
	TextTone         TextTone
	Creativity       CreativityLevel
	Personas         []Persona
	ImageHints       string
	ImageFormat      ImageFormat
	AllowTextInImage bool
	TextModel        string
	ImageModel       string
	Advanced         AdvancedSettings
	HeadlineEnabled  bool
}

// DefaultSettings returns the factory configuration.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		VisualStyle:     StylePictogram,
		TextTone:        ToneProfessional,
		Creativity:      CreativityMedium,
		Personas:        []Persona{PersonaNeutral},
		ImageFormat:     FormatPNG,
		TextModel:       BestDefaultTextModel(TextModelOptions),
		ImageModel:      DefaultImageModel,
		Advanced:        AdvancedSettings{Temperature: 0.7, TopP: 0.95, TopK: 40},
		HeadlineEnabled: true,
	}
}

// TogglePersona flips p in the current set while keeping the set valid:
// it is never empty, and PersonaNeutral never coexists with another
// persona.
func TogglePersona(current []Persona, p Persona) []Persona {
	if p == PersonaNeutral {
		return []Persona{PersonaNeutral}
	}
	next := make([]Persona, 0, len(current)+1)
	found := false
	for _, c := range current {
		if c == PersonaNeutral {
			continue
		}
		if c == p {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		next = append(next, p)
	}
	if len(next) == 0 {
		return []Persona{PersonaNeutral}
	}
	return next
}

// HasPersona reports whether p is part of the set.
func HasPersona(set []Persona, p Persona) bool {
	for _, c := range set {
		if c == p {
			return true
		}
	}
	return false
}
