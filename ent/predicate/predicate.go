// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// TutorSession is the predicate function for tutorsession builders.
type TutorSession func(*sql.Selector)
