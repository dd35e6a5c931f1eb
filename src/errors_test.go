package studio

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyMissingCredential(t *testing.T) {
	ce := ClassifyError(ErrMissingAPIKey, "generar texto")
	if ce.Category != CategoryMissingCredential {
		t.Fatalf("category = %v", ce.Category)
	}
}

func TestClassifyInvalidCredential(t *testing.T) {
	ce := ClassifyError(errors.New("400: API key not valid. Please pass a valid API key."), "generar texto")
	if ce.Category != CategoryInvalidCredential {
		t.Fatalf("category = %v", ce.Category)
	}
}

func TestClassifyQuota(t *testing.T) {
	for _, msg := range []string{
		"googleapi: Error 429: quota exceeded",
		"rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED",
	} {
		ce := ClassifyError(errors.New(msg), "generar texto")
		if ce.Category != CategoryQuotaExceeded {
			t.Errorf("%q -> %v, want quota", msg, ce.Category)
		}
	}
}

func TestClassifyModelNotFound(t *testing.T) {
	ce := ClassifyError(errors.New("googleapi: Error 404: model not found"), "al generar la imagen")
	if ce.Category != CategoryModelNotFound {
		t.Fatalf("category = %v", ce.Category)
	}
}

func TestClassifySafety(t *testing.T) {
	ce := ClassifyError(errors.New("response blocked by safety filters"), "generar texto")
	if ce.Category != CategorySafetyBlocked {
		t.Fatalf("category = %v", ce.Category)
	}
}

func TestClassifyUnknownKeepsContext(t *testing.T) {
	ce := ClassifyError(errors.New("boom"), "generar texto")
	if ce.Category != CategoryUnknown {
		t.Fatalf("category = %v", ce.Category)
	}
	want := "Error inesperado al generar texto: boom"
	if ce.Message != want {
		t.Fatalf("message = %q, want %q", ce.Message, want)
	}
}

func TestClassifyPassesThroughClassified(t *testing.T) {
	orig := ClassifyError(ErrMissingAPIKey, "generar texto")
	wrapped := fmt.Errorf("paso previo: %w", orig)
	got := ClassifyError(wrapped, "al buscar noticias")
	if got != orig {
		t.Fatal("already classified errors must not be reclassified")
	}
}

func TestClassifyMalformedResponse(t *testing.T) {
	ce := ClassifyError(ErrMalformedAIResponse, "al sugerir temas")
	if ce.Category != CategoryMalformedResponse {
		t.Fatalf("category = %v", ce.Category)
	}
}
