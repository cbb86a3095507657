package llm

import "context"

// RequestEventData captures one oracle call for the event log.
type RequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo is the sink for oracle request events. The store package
// provides the persistent implementation; this package only depends on
// the interface so the provider stack stays storage-agnostic.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data RequestEventData) error
}
