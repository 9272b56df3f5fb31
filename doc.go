// Package veostudio turns a short free-text video idea into a structured,
// editable Veo prompt specification.
//
// The Structurer issues a single schema-constrained request to a generative
// model and returns a validated veo.PromptSpec. The Session holds the one
// spec belonging to the current editing session: it is replaced wholesale
// when structuring succeeds, mutated field by field as the user edits, and
// serialized verbatim on export.
package veostudio
