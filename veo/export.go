package veo

import (
	"encoding/json"
	"strings"
)

// MIMEType of the export artifact.
const MIMEType = "application/json"

// Marshal serializes the spec as indented JSON with the four canonical
// top-level keys in declaration order. It does not mutate the spec.
func (s PromptSpec) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportFileName builds the export artifact name for a title and an
// ISO-8601 created_at value: the title with spaces replaced by underscores,
// followed by the calendar date, e.g. "cyberpunk_robot_2024-05-01.json".
func ExportFileName(title, createdAt string) string {
	date, _, _ := strings.Cut(createdAt, "T")
	return SafeTitle(title) + "_" + date + ".json"
}

// FileName returns the export artifact name for this spec.
func (s PromptSpec) FileName() string {
	return ExportFileName(s.ProjectMeta.Title, s.ProjectMeta.CreatedAt)
}
