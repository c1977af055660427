package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemasFS embed.FS

// PropertyDocumentV1 - ключ схемы документа коллекции properties.
const PropertyDocumentV1 = "property/v1"

var (
	compileOnce     sync.Once
	compileErr      error
	compiledSchemas = make(map[string]*jsonschema.Schema)
)

// compileAll компилирует все схемы из schemas/ один раз за время жизни процесса.
func compileAll() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true

		var paths []string
		compileErr = fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			data, err := schemasFS.ReadFile(path)
			if err != nil {
				return err
			}
			if err := compiler.AddResource(path, bytes.NewReader(data)); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if compileErr != nil {
			return
		}

		for _, path := range paths {
			schema, err := compiler.Compile(path)
			if err != nil {
				compileErr = fmt.Errorf("could not compile schema %s: %w", path, err)
				return
			}
			compiledSchemas[keyFromPath(path)] = schema
		}
	})
	return compileErr
}

// keyFromPath превращает "schemas/property/v1.json" в "property/v1".
func keyFromPath(path string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
}

// Validate проверяет сырой JSON документа по схеме с ключом key.
func Validate(key string, body []byte) error {
	if err := compileAll(); err != nil {
		return err
	}

	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema '%s' not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("document is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
