package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fhofer/invoice-assistant/internal/common"
)

// BuildPostingJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the document the bookkeeping endpoint accepts. It is
// used locally to validate every posting before it goes out.
func BuildPostingJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"date":          map[string]any{"type": "string", "pattern": `^\d{2}\.\d{2}\.\d{4}$`},
			"rechnungstext": map[string]any{"type": "string", "minLength": 1},
			"betrag":        map[string]any{"type": "string", "pattern": `^[\d.,]+$`},
			"konto1":        map[string]any{"type": "string", "pattern": `^\d+$`},
			"konto2":        map[string]any{"type": "string", "pattern": `^\d+$`},
		},
		"required": []string{"date", "rechnungstext", "betrag", "konto1", "konto2"},
	}
}

// ValidatePosting validates doc against the posting schema.
func ValidatePosting(doc PostingDocument) error {
	b, err := json.Marshal(BuildPostingJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("posting.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("posting.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal posting: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal posting: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return common.NewAppError("POSTING_INVALID", "posting does not match schema", err)
	}
	return nil
}
