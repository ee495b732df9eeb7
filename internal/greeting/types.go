package greeting

// Prompt is the only text ever sent to the model.
const Prompt = "Hello, Gemini!"

// Output is the result of a greeting round-trip.
type Output struct {
	Text         string // completion text, printed verbatim
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage reports token counts for the single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
