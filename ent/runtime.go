// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/yojanabuddy/teachme/ent/llmrequestevent"
	"github.com/yojanabuddy/teachme/ent/note"
	"github.com/yojanabuddy/teachme/ent/schema"
	"github.com/yojanabuddy/teachme/ent/tutorsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	noteFields := schema.Note{}.Fields()
	_ = noteFields
	// noteDescTitle is the schema descriptor for title field.
	noteDescTitle := noteFields[2].Descriptor()
	// note.DefaultTitle holds the default value on creation for the title field.
	note.DefaultTitle = noteDescTitle.Default.(string)
	// noteDescSubject is the schema descriptor for subject field.
	noteDescSubject := noteFields[3].Descriptor()
	// note.DefaultSubject holds the default value on creation for the subject field.
	note.DefaultSubject = noteDescSubject.Default.(string)
	// noteDescCreatedAt is the schema descriptor for created_at field.
	noteDescCreatedAt := noteFields[5].Descriptor()
	// note.DefaultCreatedAt holds the default value on creation for the created_at field.
	note.DefaultCreatedAt = noteDescCreatedAt.Default.(func() time.Time)
	tutorsessionFields := schema.TutorSession{}.Fields()
	_ = tutorsessionFields
	// tutorsessionDescMode is the schema descriptor for mode field.
	tutorsessionDescMode := tutorsessionFields[3].Descriptor()
	// tutorsession.DefaultMode holds the default value on creation for the mode field.
	tutorsession.DefaultMode = tutorsessionDescMode.Default.(string)
	// tutorsessionDescIsCompleted is the schema descriptor for is_completed field.
	tutorsessionDescIsCompleted := tutorsessionFields[4].Descriptor()
	// tutorsession.DefaultIsCompleted holds the default value on creation for the is_completed field.
	tutorsession.DefaultIsCompleted = tutorsessionDescIsCompleted.Default.(bool)
	// tutorsessionDescVersion is the schema descriptor for version field.
	tutorsessionDescVersion := tutorsessionFields[5].Descriptor()
	// tutorsession.DefaultVersion holds the default value on creation for the version field.
	tutorsession.DefaultVersion = tutorsessionDescVersion.Default.(int64)
	// tutorsessionDescCreatedAt is the schema descriptor for created_at field.
	tutorsessionDescCreatedAt := tutorsessionFields[7].Descriptor()
	// tutorsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	tutorsession.DefaultCreatedAt = tutorsessionDescCreatedAt.Default.(func() time.Time)
	// tutorsessionDescUpdatedAt is the schema descriptor for updated_at field.
	tutorsessionDescUpdatedAt := tutorsessionFields[8].Descriptor()
	// tutorsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tutorsession.DefaultUpdatedAt = tutorsessionDescUpdatedAt.Default.(func() time.Time)
}
