package systemprompt

// ContextProvider supplies a titled block of extra context appended to
// a generated system prompt, e.g. live web search results gathered
// before an advisory call.
type ContextProvider interface {
	// Title labels the block and identifies the provider for
	// registration and removal.
	Title() string
	// Info returns the block body.
	Info() string
}
