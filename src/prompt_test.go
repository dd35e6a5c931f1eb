package studio

import (
	"strings"
	"testing"
)

func TestPersonaInstructionNeutralIsEmpty(t *testing.T) {
	if got := personaInstruction([]Persona{PersonaNeutral}); got != "" {
		t.Fatalf("neutral persona produced instruction %q", got)
	}
	if got := personaInstruction(nil); got != "" {
		t.Fatalf("empty set produced instruction %q", got)
	}
}

func TestPersonaInstructionSingleAndMultiple(t *testing.T) {
	single := personaInstruction([]Persona{PersonaInnovator})
	if !strings.HasPrefix(single, "Adopta la perspectiva de ") {
		t.Fatalf("single = %q", single)
	}

	multi := personaInstruction([]Persona{PersonaInnovator, PersonaStoryteller})
	if !strings.HasPrefix(multi, "Combina las perspectivas de: ") {
		t.Fatalf("multi = %q", multi)
	}
}

func TestConditionalHashtagsDeduped(t *testing.T) {
	got := conditionalHashtags([]Persona{
		PersonaVitagAppPlatform,
		PersonaAIBootcampEducator,
		PersonaCybersecurityExpert,
	})
	want := []string{"#ILoveVideo", "#IACompliance"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBuildPostPromptCarriesHashtags(t *testing.T) {
	s := DefaultSettings()
	s.Topic = "IA generativa"
	s.Personas = []Persona{PersonaVitagAppPlatform}

	prompt := BuildPostPrompt(PlatformLinkedIn, s)
	for _, want := range []string{PrimaryHashtag, SecondaryHashtag, "#ILoveVideo", "IA generativa", "Post LinkedIn"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPostPromptBlogHasNoHashtags(t *testing.T) {
	s := DefaultSettings()
	s.Topic = "ciberseguridad"
	prompt := BuildPostPrompt(PlatformBlog, s)
	if strings.Contains(prompt, PrimaryHashtag) {
		t.Error("blog prompt should not request hashtags")
	}
	if !strings.Contains(prompt, "Artículo de Blog") {
		t.Error("blog objective missing")
	}
}

func TestBuildImagePromptNoTextRule(t *testing.T) {
	s := DefaultSettings()
	s.Topic = "redes neuronales"
	s.AllowTextInImage = false

	prompt, _ := BuildImagePrompt(s, PlatformLinkedIn)
	if !strings.Contains(prompt, "NO incluyas texto") {
		t.Error("no-text rule missing when text disallowed")
	}

	s.AllowTextInImage = true
	prompt, _ = BuildImagePrompt(s, PlatformLinkedIn)
	if strings.Contains(prompt, "NO incluyas texto") {
		t.Error("no-text rule present when text allowed")
	}
}

func TestBuildImagePromptInfographicOverridesTextRule(t *testing.T) {
	s := DefaultSettings()
	s.Topic = "datos"
	s.VisualStyle = StyleInfographic
	s.AllowTextInImage = false

	prompt, _ := BuildImagePrompt(s, PlatformLinkedIn)
	if strings.Contains(prompt, "NO incluyas texto") {
		t.Error("infographics imply text; rule must be dropped")
	}
}

func TestBuildImagePromptAspectRatios(t *testing.T) {
	s := DefaultSettings()
	s.Topic = "x"

	for platform, want := range map[Platform]string{
		PlatformLinkedIn:  "1:1",
		PlatformInstagram: "1:1",
		PlatformFacebook:  "1:1",
		PlatformTwitter:   "16:9",
		PlatformBlog:      "16:9",
	} {
		if _, aspect := BuildImagePrompt(s, platform); aspect != want {
			t.Errorf("%s aspect = %q, want %q", platform, aspect, want)
		}
	}
}

func TestBuildImagePromptIncludesHints(t *testing.T) {
	s := DefaultSettings()
	s.Topic = "drones"
	s.ImageHints = "atardecer dorado"
	prompt, _ := BuildImagePrompt(s, PlatformTwitter)
	if !strings.Contains(prompt, "atardecer dorado") {
		t.Error("custom hints missing")
	}
	if !strings.Contains(prompt, "Formato apaisado") {
		t.Error("landscape platform hint missing")
	}
}

func TestBuildHeadlinePromptTruncates(t *testing.T) {
	long := strings.Repeat("a", 900)
	prompt := BuildHeadlinePrompt(long, ToneProfessional, nil)
	if strings.Contains(prompt, strings.Repeat("a", 501)) {
		t.Error("headline prompt must only carry the first 500 chars")
	}
}

func TestBuildNewsPromptPersonaClause(t *testing.T) {
	prompt := BuildNewsPrompt("", []Persona{PersonaFinanceExpert})
	if !strings.Contains(prompt, "Experto en Finanzas") {
		t.Error("persona relevance clause missing")
	}

	neutral := BuildNewsPrompt("", []Persona{PersonaNeutral})
	if strings.Contains(neutral, "particularmente relevante") {
		t.Error("neutral selection must not bias the search")
	}
}

func TestBuildNewsPromptTopicVariants(t *testing.T) {
	with := BuildNewsPrompt("  fintech  ", nil)
	if !strings.Contains(with, `"fintech"`) {
		t.Error("trimmed topic missing from prompt")
	}
	without := BuildNewsPrompt("   ", nil)
	if !strings.Contains(without, "IA, Tecnología o Ciberseguridad") {
		t.Error("default beat missing when no topic")
	}
}
