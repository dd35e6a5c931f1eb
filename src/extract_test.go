package studio

import "testing"

func TestExtractJSONFenced(t *testing.T) {
	raw := "Aquí tienes:\n```json\n[\"a\", \"b\"]\n```\nEspero que sirva."
	if got := ExtractJSON(raw); got != `["a", "b"]` {
		t.Fatalf("fenced extract = %q", got)
	}
}

func TestExtractJSONFencedWithoutLanguage(t *testing.T) {
	raw := "```\n{\"title\": \"hola\"}\n```"
	if got := ExtractJSON(raw); got != `{"title": "hola"}` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractJSONObjectInProse(t *testing.T) {
	raw := `El resultado es {"title": "x", "tags": ["a", "b"]} y nada más {extra`
	want := `{"title": "x", "tags": ["a", "b"]}`
	if got := ExtractJSON(raw); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtractJSONPrefersEarlierBracket(t *testing.T) {
	raw := `["uno", "dos"] tras la lista viene {"x": 1}`
	if got := ExtractJSON(raw); got != `["uno", "dos"]` {
		t.Fatalf("got %q", got)
	}
}

func TestExtractJSONNoStructure(t *testing.T) {
	raw := "  sin json alguno  "
	if got := ExtractJSON(raw); got != "sin json alguno" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractJSONIdempotent(t *testing.T) {
	clean := `{"a": [1, 2, 3]}`
	if got := ExtractJSON(ExtractJSON(clean)); got != clean {
		t.Fatalf("double extract changed the value: %q", got)
	}
}
