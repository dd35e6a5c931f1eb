package studio

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Operation identifies one of the engine's long-running actions. At
// most one instance of each runs at a time.
type Operation int

const (
	OpNews Operation = iota
	OpGenerate
	OpRegenImage
	OpRegenCopy
	OpSuggestTopics
	OpSuggestHints
	OpHeadline
	OpEdit
)

var operationNames = map[Operation]string{
	OpNews:          "news",
	OpGenerate:      "generate",
	OpRegenImage:    "regen-image",
	OpRegenCopy:     "regen-copy",
	OpSuggestTopics: "suggest-topics",
	OpSuggestHints:  "suggest-hints",
	OpHeadline:      "headline",
	OpEdit:          "edit",
}

func (o Operation) String() string { return operationNames[o] }

// Progress is a pipeline milestone forwarded to the UI.
type Progress struct {
	Percent int
	Message string
}

// GeneratedContent is the working slot holding the latest copy and
// image for one platform.
type GeneratedContent struct {
	Platform    Platform
	Copy        string
	ImageBase64 string
	ImageMIME   string
}

// FetchedNews is a headline retrieved through search grounding.
type FetchedNews struct {
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	URL             string `json:"url"`
	PublicationDate string `json:"publicationDate"`
}

// EngineState is a point-in-time snapshot safe to render from.
type EngineState struct {
	Busy           map[Operation]bool
	Progress       Progress
	LastError      *ClassifiedError
	NeedCredential bool
	Tokens         *int32
	Elapsed        time.Duration
	Content        *GeneratedContent
	News           *FetchedNews
}

// Engine coordinates providers, settings, and history behind a mutex so
// the UI goroutine and worker goroutines never race. Operations run on
// the caller's goroutine; the TUI wraps them in commands.
type Engine struct {
	text     TextProvider
	multimod ImageProvider
	predict  ImageProvider
	editor   ImageEditor
	lister   ModelLister

	Settings *SettingsStore
	History  *History
	logger   *zap.Logger

	mu             sync.Mutex
	busy           map[Operation]bool
	progress       Progress
	lastErr        *ClassifiedError
	needCredential bool
	tokens         *int32
	startedAt      time.Time
	running        int
	content        *GeneratedContent
	news           *FetchedNews
	runSeq         uint64
	activeRun      uint64

	onProgress func(Progress)
}

// EngineDeps bundles the engine's collaborators.
type EngineDeps struct {
	Text     TextProvider
	Multimod ImageProvider
	Predict  ImageProvider
	Editor   ImageEditor
	Lister   ModelLister
	Settings *SettingsStore
	History  *History
	Logger   *zap.Logger
}

func NewEngine(deps EngineDeps) *Engine {
	return &Engine{
		text:     deps.Text,
		multimod: deps.Multimod,
		predict:  deps.Predict,
		editor:   deps.Editor,
		lister:   deps.Lister,
		Settings: deps.Settings,
		History:  deps.History,
		logger:   deps.Logger,
		busy:     map[Operation]bool{},
	}
}

// SetProgressSink installs the callback invoked on every milestone.
// The TUI points this at Program.Send.
func (e *Engine) SetProgressSink(fn func(Progress)) {
	e.mu.Lock()
	e.onProgress = fn
	e.mu.Unlock()
}

// imageProviderFor routes by model family: ids containing "imagen" use
// the predict surface, everything else the multimodal one.
func (e *Engine) imageProviderFor(model string) ImageProvider {
	if strings.Contains(model, "imagen") {
		return e.predict
	}
	return e.multimod
}

// State returns a render-safe snapshot.
func (e *Engine) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	busy := make(map[Operation]bool, len(e.busy))
	for op, b := range e.busy {
		busy[op] = b
	}
	var elapsed time.Duration
	if e.running > 0 {
		elapsed = time.Since(e.startedAt)
	}
	var total *int32
	if e.tokens != nil {
		n := *e.tokens
		total = &n
	}
	return EngineState{
		Busy:           busy,
		Progress:       e.progress,
		LastError:      e.lastErr,
		NeedCredential: e.needCredential,
		Tokens:         total,
		Elapsed:        elapsed,
		Content:        e.content,
		News:           e.news,
	}
}

// Busy reports whether op is currently running.
func (e *Engine) Busy(op Operation) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy[op]
}

// AnyBusy reports whether any operation is in flight.
func (e *Engine) AnyBusy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running > 0
}

// Content returns the current working slot, nil before the first
// generation.
func (e *Engine) Content() *GeneratedContent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content
}

// News returns the last fetched headline, if any.
func (e *Engine) News() *FetchedNews {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.news
}

// ClearError drops the last error. The credential flag survives until
// a key is stored.
func (e *Engine) ClearError() {
	e.mu.Lock()
	e.lastErr = nil
	e.mu.Unlock()
}

// CredentialStored clears the missing-credential latch after the user
// saves a key.
func (e *Engine) CredentialStored() {
	e.mu.Lock()
	e.needCredential = false
	e.mu.Unlock()
}

// Abort invalidates the active run. Steps already dispatched finish in
// the background but their results are discarded.
func (e *Engine) Abort() {
	e.mu.Lock()
	e.activeRun = 0
	e.progress = Progress{}
	e.mu.Unlock()
	e.logger.Info("run aborted")
}

// begin marks op busy and opens a run scope. It returns the run id the
// operation must carry through its steps.
func (e *Engine) begin(op Operation) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.busy[op] = true
	e.lastErr = nil
	if e.running == 0 {
		e.startedAt = time.Now()
		e.tokens = nil
	}
	e.running++
	e.runSeq++
	e.activeRun = e.runSeq
	e.logger.Info("operation started", zap.String("op", op.String()))
	return e.runSeq
}

// runAlive reports whether run is still the active scope.
func (e *Engine) runAlive(run uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeRun == run
}

func (e *Engine) finish(op Operation) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.busy, op)
	if e.running > 0 {
		e.running--
	}
	e.progress = Progress{}
	e.logger.Info("operation finished", zap.String("op", op.String()))
}

// fail records a classified error and clears every busy flag so the UI
// never sticks in a loading state.
func (e *Engine) fail(op Operation, err error, ctx string) *ClassifiedError {
	ce := ClassifyError(err, ctx)
	e.mu.Lock()
	e.busy = map[Operation]bool{}
	e.running = 0
	e.progress = Progress{}
	e.lastErr = ce
	if ce.Category == CategoryMissingCredential {
		e.needCredential = true
	}
	e.mu.Unlock()
	e.logger.Warn("operation failed",
		zap.String("op", op.String()),
		zap.String("category", categoryName(ce.Category)),
		zap.Error(err))
	return ce
}

func categoryName(c Category) string {
	switch c {
	case CategoryMissingCredential:
		return "missing-credential"
	case CategoryInvalidCredential:
		return "invalid-credential"
	case CategoryQuotaExceeded:
		return "quota"
	case CategoryModelNotFound:
		return "model-not-found"
	case CategorySafetyBlocked:
		return "safety"
	case CategoryMalformedResponse:
		return "malformed"
	}
	return "unknown"
}

// addTokens folds a step's token count into the session total.
func (e *Engine) addTokens(n *int32) {
	if n == nil {
		return
	}
	e.mu.Lock()
	if e.tokens == nil {
		total := *n
		e.tokens = &total
	} else {
		*e.tokens += *n
	}
	e.mu.Unlock()
}

func (e *Engine) report(run uint64, percent int, message string) {
	e.mu.Lock()
	alive := e.activeRun == run
	var sink func(Progress)
	if alive {
		e.progress = Progress{Percent: percent, Message: message}
		sink = e.onProgress
	}
	e.mu.Unlock()
	if sink != nil {
		sink(Progress{Percent: percent, Message: message})
	}
}

func (e *Engine) setContent(c *GeneratedContent) {
	e.mu.Lock()
	e.content = c
	e.mu.Unlock()
}

func (e *Engine) setNews(n *FetchedNews) {
	e.mu.Lock()
	e.news = n
	e.mu.Unlock()
}

// textOptions builds the sampling options for the given snapshot.
func textOptions(s GenerationSettings) TextOptions {
	return TextOptions{
		Model:       s.TextModel,
		Temperature: s.Advanced.Temperature,
		TopP:        s.Advanced.TopP,
		TopK:        s.Advanced.TopK,
		UseSampling: true,
	}
}

// ListModelOptions fetches the dynamic model catalog and merges it over
// the curated defaults. Failures degrade to the defaults.
func (e *Engine) ListModelOptions(ctx context.Context) (textModels, imageModels []ModelOption) {
	listed, err := e.lister.ListModels(ctx)
	if err != nil {
		e.logger.Warn("dynamic model listing failed", zap.Error(err))
		return TextModelOptions, ImageModelOptions
	}
	dynText, dynImage := CategorizeModels(listed)
	return MergeModelOptions(dynText, TextModelOptions), MergeModelOptions(dynImage, ImageModelOptions)
}
