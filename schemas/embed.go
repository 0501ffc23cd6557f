// Package schemas embeds the JSON Schemas that skill record documents
// are validated against at load time.
package schemas

import _ "embed"

// SkillSchema is the JSON Schema for a single skill record document.
//
//go:embed skill.schema.json
var SkillSchema string

// SkillIndexSchema is the JSON Schema for the skill index document.
//
//go:embed skill_index.schema.json
var SkillIndexSchema string
