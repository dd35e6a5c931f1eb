package studio

import "context"

// TextResult is generated prose plus the token count reported by the
// backend, when it reports one.
type TextResult struct {
	Text   string
	Tokens *int32
}

// ImageResult is a generated image as raw base64 plus its mime type.
type ImageResult struct {
	Base64 string
	MIME   string
	Tokens *int32
}

// TextOptions selects the model and sampling parameters for one text
// call. JSONOnly constrains the response mime type; WebSearch attaches
// the search grounding tool.
type TextOptions struct {
	Model       string
	Temperature float32
	TopP        float32
	TopK        int32
	JSONOnly    bool
	SystemHint  string
	WebSearch   bool
	UseSampling bool
}

// ImageConfig selects the model and output shape for one image call.
type ImageConfig struct {
	Model       string
	AspectRatio string
	MIMEType    ImageFormat
}

// TextProvider generates prose.
type TextProvider interface {
	GenerateText(ctx context.Context, prompt string, opts TextOptions) (TextResult, error)
}

// ImageProvider generates an image from a prompt.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string, cfg ImageConfig) (ImageResult, error)
}

// ImageEditor transforms an existing image per an instruction.
type ImageEditor interface {
	EditImage(ctx context.Context, base64Data, mimeType, instruction string) (ImageResult, error)
}

// ModelLister enumerates the models the backend currently offers.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ListedModel, error)
}
