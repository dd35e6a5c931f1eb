package studio

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the closed set of user-facing error classes.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMissingCredential
	CategoryInvalidCredential
	CategoryQuotaExceeded
	CategoryModelNotFound
	CategorySafetyBlocked
	CategoryMalformedResponse
)

// Sentinels raised below the classifier.
var (
	ErrMissingAPIKey        = errors.New("CUSTOM_API_KEY_MISSING")
	ErrMalformedAIResponse  = errors.New("malformed ai response")
	ErrEmptyImageResponse   = errors.New("No se generó ninguna imagen válida.")
	ErrNoTopic              = errors.New("Por favor, introduce un tema.")
	ErrNothingToRegenerate  = errors.New("No hay contenido generado todavía.")
	ErrNoCopyForHeadline    = errors.New("No hay texto para generar un titular.")
)

// ClassifiedError carries the category plus the Spanish message shown to
// the user. It wraps the provider error for logging.
type ClassifiedError struct {
	Category Category
	Message  string
	cause    error
}

func (e *ClassifiedError) Error() string { return e.Message }
func (e *ClassifiedError) Unwrap() error { return e.cause }

// ClassifyError maps an arbitrary provider failure to a category and a
// message. ctx is the Spanish verb phrase for the failed operation
// ("generar texto", "al buscar noticias", ...) interpolated into the
// message, matching the provider's own phrasing conventions.
func ClassifyError(err error, ctx string) *ClassifiedError {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce
	}

	msg := err.Error()
	upper := strings.ToUpper(msg)
	lower := strings.ToLower(msg)

	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return &ClassifiedError{
			Category: CategoryMissingCredential,
			Message:  "Se requiere una API Key de Gemini para continuar. Por favor, ingrésala.",
			cause:    err,
		}
	case strings.Contains(msg, "API key not valid"):
		return &ClassifiedError{
			Category: CategoryInvalidCredential,
			Message:  "Clave API de Gemini inválida. Por favor, verifica tu configuración en el panel avanzado.",
			cause:    err,
		}
	case strings.Contains(msg, "429"), strings.Contains(upper, "RESOURCE_EXHAUSTED"):
		return &ClassifiedError{
			Category: CategoryQuotaExceeded,
			Message:  fmt.Sprintf("Límite de cuota excedido al %s. Has realizado demasiadas solicitudes en un corto período de tiempo.", ctx),
			cause:    err,
		}
	case strings.Contains(msg, "404"), strings.Contains(upper, "NOT_FOUND"):
		return &ClassifiedError{
			Category: CategoryModelNotFound,
			Message:  fmt.Sprintf("El modelo de IA seleccionado no se encontró (%s). Puede que el modelo esté obsoleto o mal configurado.", ctx),
			cause:    err,
		}
	case strings.Contains(lower, "safety"), strings.Contains(lower, "blocked"):
		return &ClassifiedError{
			Category: CategorySafetyBlocked,
			Message:  fmt.Sprintf("La solicitud fue bloqueada por los filtros de seguridad de la IA (%s). Intenta reformular tu tema.", ctx),
			cause:    err,
		}
	case errors.Is(err, ErrMalformedAIResponse):
		return &ClassifiedError{
			Category: CategoryMalformedResponse,
			Message:  "La IA devolvió una respuesta con formato inválido.",
			cause:    err,
		}
	}
	return &ClassifiedError{
		Category: CategoryUnknown,
		Message:  fmt.Sprintf("Error inesperado al %s: %s", ctx, msg),
		cause:    err,
	}
}
