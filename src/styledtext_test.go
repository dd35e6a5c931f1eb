package studio

import "testing"

func TestBoldRoundTrip(t *testing.T) {
	in := "Redactor 2026"
	styled := ToBold(in)
	if styled == in {
		t.Fatal("ToBold changed nothing")
	}
	if got := ToPlain(styled); got != in {
		t.Fatalf("round trip = %q, want %q", got, in)
	}
}

func TestItalicRoundTrip(t *testing.T) {
	in := "BarnaIA"
	styled := ToItalic(in)
	if got := ToPlain(styled); got != in {
		t.Fatalf("round trip = %q, want %q", got, in)
	}
}

func TestItalicDigitsUntouched(t *testing.T) {
	// The italic sans-serif plane has no digits, so they pass through.
	if got := ToItalic("abc123"); ToPlain(got) != "abc123" {
		t.Fatalf("digits corrupted: %q", got)
	}
}

func TestIsStyled(t *testing.T) {
	if IsStyled("texto plano") {
		t.Error("plain text flagged as styled")
	}
	if !IsStyled(ToBold("hola")) {
		t.Error("bold text not detected")
	}
}

func TestApplyInlineStylesBoldFirst(t *testing.T) {
	got := ApplyInlineStyles("**IA** y *video*")
	if got == "**IA** y *video*" {
		t.Fatal("markers not consumed")
	}
	if ToPlain(got) != "IA y video" {
		t.Fatalf("content mangled: %q", ToPlain(got))
	}
}

func TestApplyInlineStylesKeepsListBullets(t *testing.T) {
	in := "* punto uno\ncon salto *"
	if got := ApplyInlineStyles(in); got != in {
		t.Fatalf("list bullet rewritten: %q", got)
	}
}

func TestApplyInlineStylesSkipsLooseItalicSpans(t *testing.T) {
	cases := []string{
		"*multi\nlínea*",
		"*palabra *",
		"* palabra*",
		"2 * 3 * 4",
	}
	for _, in := range cases {
		if got := ApplyInlineStyles(in); got != in {
			t.Errorf("ApplyInlineStyles(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestCanonicalizeWhitespace(t *testing.T) {
	in := "hola\r\n\r\n\r\nmundo   con    espacios \n"
	want := "hola\nmundo con espacios"
	if got := CanonicalizeWhitespace(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeCopy(t *testing.T) {
	in := "  **Título**\r\n\r\nCuerpo  del   post  "
	got := NormalizeCopy(in)
	if ToPlain(got) != "Título\nCuerpo del post" {
		t.Fatalf("normalized = %q", ToPlain(got))
	}
}
