package source

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed deck.schema.json
var deckSchemaJSON []byte

const deckSchemaURL = "schema://flashdeck/deck.json"

var (
	compileOnce sync.Once
	deckSchema  *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles the embedded deck schema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(deckSchemaJSON, &doc); err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(deckSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		deckSchema, compileErr = c.Compile(deckSchemaURL)
	})
	return deckSchema, compileErr
}

// validate checks raw deck JSON against the schema.
func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", ErrInvalidDeck, err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDeck, err)
	}
	return nil
}
