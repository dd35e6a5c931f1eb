package studio

import "testing"

func TestCategorizeModels(t *testing.T) {
	listed := []ListedModel{
		{Name: "models/gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", Methods: []string{"generateContent"}},
		{Name: "models/gemini-3-pro-preview", DisplayName: "Gemini 3 Pro", Methods: []string{"generateContent"}},
		{Name: "models/gemini-2.5-flash-image", DisplayName: "Flash Image", Methods: []string{"generateContent"}},
		{Name: "models/imagen-4.0-generate-001", DisplayName: "Imagen 4", Methods: []string{"predict"}},
		{Name: "models/embedding-001", DisplayName: "Embeddings", Methods: []string{"embedContent"}},
		{Name: "models/gemini-old", DisplayName: "Legacy", Methods: []string{"countTokens"}},
	}

	text, image := CategorizeModels(listed)

	if len(text) != 2 {
		t.Fatalf("text models = %v", text)
	}
	// Pro scores above flash.
	if text[0].Value != "gemini-3-pro-preview" {
		t.Errorf("expected pro first, got %v", text)
	}
	if text[0].Label != "Gemini 3 Pro (Potente)" {
		t.Errorf("pro label = %q", text[0].Label)
	}
	if text[1].Label != "Gemini 2.5 Flash (Rápido)" {
		t.Errorf("flash label = %q", text[1].Label)
	}

	if len(image) != 2 {
		t.Fatalf("image models = %v", image)
	}
	for _, m := range image {
		if m.Value != "gemini-2.5-flash-image" && m.Value != "imagen-4.0-generate-001" {
			t.Errorf("unexpected image model %q", m.Value)
		}
	}
}

func TestMergeModelOptions(t *testing.T) {
	dynamic := []ModelOption{
		{Value: "gemini-2.5-flash", Label: "dyn flash"},
		{Value: "gemini-x", Label: "dyn x"},
	}
	merged := MergeModelOptions(dynamic, TextModelOptions)

	if merged[0].Value != "gemini-2.5-flash" || merged[0].Label != "dyn flash" {
		t.Fatalf("dynamic listing must lead: %v", merged)
	}
	seen := map[string]int{}
	for _, m := range merged {
		seen[m.Value]++
	}
	if seen["gemini-2.5-flash"] != 1 {
		t.Error("duplicate entry after merge")
	}
	if seen["gemini-3-pro-preview"] != 1 {
		t.Error("curated default dropped")
	}
}

func TestMergeModelOptionsEmptyDynamic(t *testing.T) {
	merged := MergeModelOptions(nil, ImageModelOptions)
	if len(merged) != len(ImageModelOptions) {
		t.Fatalf("expected defaults untouched, got %v", merged)
	}
}

func TestBestDefaultTextModel(t *testing.T) {
	if got := BestDefaultTextModel(nil); got != "gemini-2.5-flash" {
		t.Errorf("empty fallback = %q", got)
	}
	opts := []ModelOption{{Value: "gemini-3-pro-preview"}}
	if got := BestDefaultTextModel(opts); got != "gemini-3-pro-preview" {
		t.Errorf("got %q", got)
	}
}

func TestLabelFor(t *testing.T) {
	if got := LabelFor(ImageModelOptions, "gemini-2.5-flash-image"); got != "Gemini 2.5 Flash Image (Nano Banana)" {
		t.Errorf("got %q", got)
	}
	if got := LabelFor(ImageModelOptions, "desconocido"); got != "desconocido" {
		t.Errorf("unknown value should echo, got %q", got)
	}
}
