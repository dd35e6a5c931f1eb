package studio

import (
	"fmt"
	"strings"
)

const (
	PrimaryHashtag   = "#BootCampIA"
	SecondaryHashtag = "#BarnaIA"
)

var personaVoices = map[Persona]string{
	PersonaCybersecurityExpert: "un experto en ciberseguridad con profundo conocimiento técnico y un enfoque en la protección de datos",
	PersonaVitagAppPlatform:    "la plataforma de video análisis Vitag.app, destacando la IA en video",
	PersonaAIBootcampEducator:  "un divulgador y formador de un Bootcamp de IA, explicando el tema de forma clara y educativa",
	PersonaFinanceExpert:       "un experto en finanzas y mercados bursátiles, ofreciendo análisis riguroso",
	PersonaInnovator:           "una perspectiva innovadora y visionaria, explorando el futuro",
	PersonaInfluencer:          "un influencer carismático y cercano, usando lenguaje moderno",
	PersonaMarketingExpert:     "un experto en marketing digital orientado a resultados",
	PersonaOpinionLeader:       "un líder de opinión influyente con visión crítica",
	PersonaCommunityManager:    "un gestor de comunidad empático y colaborativo",
	PersonaTechnicalWriter:     "un redactor técnico preciso y estructurado",
	PersonaStoryteller:         "un narrador de historias que conecta emocionalmente",
	PersonaHumanizedAI:         "un estilo ultra-natural y humano, evitando patrones robóticos",
}

var personaNames = map[Persona]string{
	PersonaNeutral:             "Neutral",
	PersonaCybersecurityExpert: "Experto en Ciberseguridad",
	PersonaVitagAppPlatform:    "Plataforma Vitag.app",
	PersonaAIBootcampEducator:  "Formador Bootcamp IA",
	PersonaInnovator:           "Innovador",
	PersonaInfluencer:          "Influencer",
	PersonaMarketingExpert:     "Experto en Marketing",
	PersonaOpinionLeader:       "Líder de Opinión",
	PersonaCommunityManager:    "Gestor de Comunidad",
	PersonaTechnicalWriter:     "Redactor Técnico",
	PersonaStoryteller:         "Narrador de Historias",
	PersonaHumanizedAI:         "IA Humanizada",
	PersonaFinanceExpert:       "Experto en Finanzas",
}

// personaInstruction renders the perspective preamble. An empty or
// neutral-only selection yields no instruction.
func personaInstruction(personas []Persona) string {
	var voices []string
	for _, p := range personas {
		if p == PersonaNeutral {
			continue
		}
		if voice, ok := personaVoices[p]; ok {
			voices = append(voices, voice)
		}
	}
	switch len(voices) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Adopta la perspectiva de %s.", voices[0])
	default:
		return fmt.Sprintf("Combina las perspectivas de: %s.", strings.Join(voices, ", "))
	}
}

// conditionalHashtags maps persona selections to extra campaign tags,
// deduplicated in first-seen order.
func conditionalHashtags(personas []Persona) []string {
	var tags []string
	seen := map[string]bool{}
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	for _, p := range personas {
		switch p {
		case PersonaVitagAppPlatform:
			add("#ILoveVideo")
		case PersonaAIBootcampEducator, PersonaCybersecurityExpert:
			add("#IACompliance")
		}
	}
	return tags
}

func commonInstructions(topic string, tone TextTone, creativity CreativityLevel) string {
	return fmt.Sprintf(`
  Tema: "%s".
  Tono: %s.
  Creatividad: %s.
  Idioma: Español de España.
  Estilo: Humano, natural, variado. Evita patrones robóticos.
  Formato:
  - Markdown SOLO para negritas (`+"`**`"+`) y cursivas (`+"`*`"+`) en palabras clave. No uses encabezados (#).
  - Párrafos cortos separados por un salto de línea.
  - Usa emojis relevantes de forma natural.
  - Sin preámbulos.
  `, topic, tone, creativity)
}

func hashtagBlock(midline string, personas []Persona) string {
	block := fmt.Sprintf(`
  Hashtags:
  - %s
  - %s
  - %s`, PrimaryHashtag, midline, SecondaryHashtag)
	if extra := conditionalHashtags(personas); len(extra) > 0 {
		block += fmt.Sprintf("\n  - Añade: \"%s\"", strings.Join(extra, " "))
	}
	return block
}

// BuildPostPrompt assembles the full text prompt for a platform from
// the settings snapshot.
func BuildPostPrompt(platform Platform, s GenerationSettings) string {
	persona := personaInstruction(s.Personas)
	common := commonInstructions(s.Topic, s.TextTone, s.Creativity)

	switch platform {
	case PlatformLinkedIn:
		return fmt.Sprintf(`
  %s
  %s
  Objetivo: Post LinkedIn profesional pero cercano.
  Estructura:
  - Gancho inicial impactante.
  - 2-4 párrafos significativos.
  - Pregunta abierta o llamada a la acción.%s
  `, persona, common, hashtagBlock("3-5 relevantes.", s.Personas))
	case PlatformTwitter:
		return fmt.Sprintf(`
  %s
  %s
  Objetivo: Tweet impactante (< 280 caracteres).
  Estructura:
  - Gancho + Idea clave + Call to action breve.%s
  `, persona, common, hashtagBlock("2-3 relevantes.", s.Personas))
	case PlatformInstagram:
		return fmt.Sprintf(`
  %s
  %s
  Objetivo: Caption Instagram atractivo.
  Estructura:
  - Frase gancho visual.
  - 2-3 párrafos cortos.
  - Emojis generosos.
  - Call to action.%s
  `, persona, common, hashtagBlock("Bloque de 5-10 hashtags.", s.Personas))
	case PlatformFacebook:
		return fmt.Sprintf(`
  %s
  %s
  Objetivo: Post Facebook informativo y social.
  Estructura:
  - Gancho.
  - 2-4 párrafos explicativos pero cercanos.
  - Pregunta o encuesta implícita.%s
  `, persona, common, hashtagBlock("3-5 relevantes.", s.Personas))
	case PlatformBlog:
		return fmt.Sprintf(`
  %s
  %s
  Objetivo: Artículo de Blog (300-500 palabras).
  Estructura:
  - PRIMERA LÍNEA: Título en negrita (**Título**).
  - Intro, Cuerpo (varios párrafos), Conclusión.
  - Tono experto pero legible.
  Sin hashtags al final.
  `, persona, common)
	}
	// Unknown platforms fall back to the LinkedIn shape.
	return BuildPostPrompt(PlatformLinkedIn, s)
}

var styleInstructions = map[VisualStyle]string{
	StylePictogram:             "Estilo pictograma. Iconos y símbolos gráficos limpios. Minimalista.",
	StyleInfographic:           "Infografía profesional y limpia. Diseño moderno, puntos clave visuales.",
	StyleRetroFuturism:         "Estilo retrofuturista (años 70-80). Neón, cromo, nostalgia tecnológica.",
	StylePixelArt:              "Pixel art detallado (16-bit).",
	StyleCinematic:             "Cinemático, iluminación dramática, 4k, alta definición.",
	StylePhotorealistic:        "Fotorrealista, alta calidad, iluminación de estudio, profesional.",
	StyleWatercolor:            "Acuarela artística. Trazos suaves, colores diluidos, textura de papel.",
	StyleAbstractExpressionism: "Expresionismo abstracto. Formas y colores expresivos, composición dinámica.",
	StyleDroneShot:             "Vista aérea de dron. Perspectiva cenital amplia, gran escala.",
	StyleMacroPhotography:      "Macrofotografía. Detalle extremo, profundidad de campo mínima.",
}

const noTextRule = "Regla estricta: NO incluyas texto, letras o números. Imagen 100% visual."

// BuildImagePrompt assembles the image prompt and picks the aspect
// ratio for the target platform. Infographics always permit text
// regardless of the AllowTextInImage toggle.
func BuildImagePrompt(s GenerationSettings, platform Platform) (prompt, aspectRatio string) {
	aspectRatio = "1:1"
	platformHint := ""
	switch platform {
	case PlatformLinkedIn, PlatformInstagram, PlatformFacebook:
		platformHint = "Fondo limpio, profesional, colores vibrantes."
	case PlatformTwitter, PlatformBlog:
		aspectRatio = "16:9"
		platformHint = "Formato apaisado, alto impacto visual."
	}

	base := fmt.Sprintf("Imagen de alta calidad sobre: %q.", s.Topic)
	style, ok := styleInstructions[s.VisualStyle]
	if !ok {
		style = styleInstructions[StylePhotorealistic]
	}
	textRule := ""
	if !s.AllowTextInImage {
		textRule = noTextRule
	}
	if s.VisualStyle == StyleInfographic {
		textRule = ""
	}

	var parts []string
	for _, p := range []string{base, style, textRule, s.ImageHints, platformHint} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " "), aspectRatio
}

// BuildHeadlinePrompt asks for a short hook derived from existing copy.
// Only the leading slice of the copy is sent.
func BuildHeadlinePrompt(currentCopy string, tone TextTone, personas []Persona) string {
	excerpt := currentCopy
	if len(excerpt) > 500 {
		excerpt = excerpt[:500]
	}
	return fmt.Sprintf(`
  Texto: %s...
  %s
  Tono: %s.
  Genera un titular (hook) de max 10-12 palabras EN ESPAÑOL. Solo el texto.
  `, excerpt, personaInstruction(personas), tone)
}

// BuildTopicSuggestionsPrompt asks for related topics as a JSON array.
func BuildTopicSuggestionsPrompt(currentTopic string) string {
	return fmt.Sprintf(`
  Tema: "%s".
  Sugerencias: 3-5 temas relacionados concisos (max 12 palabras).
  Salida: Array JSON de strings.
  Ejemplo: ["Tema 1", "Tema 2"]
  `, currentTopic)
}

// BuildImageHintsPrompt asks for a detailed visual description wrapped
// in a JSON object.
func BuildImageHintsPrompt(s GenerationSettings) string {
	return fmt.Sprintf(`
  Tema: "%s". Estilo: %s. Tono: %s.
  Genera una descripción visual DETALLADA (prompt de imagen) de 50-80 palabras EN ESPAÑOL.
  Incluye: iluminación, composición, colores, elementos clave.
  Salida: JSON {"text": "descripción..."}
  `, s.Topic, s.VisualStyle, s.TextTone)
}

// BuildEditTextPrompt rewrites existing copy per a free-form
// instruction.
func BuildEditTextPrompt(currentText, instruction string) string {
	return fmt.Sprintf(`
  Texto Original:
  ---
  %s
  ---
  Instrucción: %s
  Devuelve el texto completo modificado. Español de España.
  `, currentText, instruction)
}

// BuildEditImagePrompt is the text part accompanying the image blob in
// an edit request.
func BuildEditImagePrompt(instruction string) string {
	return fmt.Sprintf("Edita esta imagen: %s.", instruction)
}

// BuildNewsPrompt asks for the most recent relevant headline as JSON.
// A non-neutral persona selection biases the search.
func BuildNewsPrompt(currentTopic string, personas []Persona) string {
	personaClause := ""
	var names []string
	for _, p := range personas {
		if p == PersonaNeutral {
			continue
		}
		if name, ok := personaNames[p]; ok {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		personaClause = fmt.Sprintf("\nConsidera que la noticia debe ser particularmente relevante para: %q.", strings.Join(names, ", "))
	}

	topic := strings.TrimSpace(currentTopic)
	if topic != "" {
		return fmt.Sprintf(`Busca el artículo de noticias más impactante y reciente (últimas 24-48h) EN ESPAÑOL relacionado con: "%s".%s
Devuelve JSON: {"title": "Titular conciso ESPAÑOL", "summary": "Resumen 2-3 frases ESPAÑOL", "url": "URL", "publicationDate": "Fecha legible"}.
Si no hay noticias, devuelve {"title": "No se encontró noticia relevante", ...}. Solo JSON.`, topic, personaClause)
	}
	return fmt.Sprintf(`Busca el artículo de noticias más impactante y reciente (últimas 24-48h) en IA, Tecnología o Ciberseguridad EN ESPAÑOL.%s
Devuelve JSON: {"title": "Titular conciso ESPAÑOL", "summary": "Resumen 2-3 frases ESPAÑOL", "url": "URL", "publicationDate": "Fecha legible"}. Solo JSON.`, personaClause)
}
