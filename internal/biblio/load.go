// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package biblio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/specnav/pkg/types"
)

// Names of the payload variables the document generator embeds in its script.
const (
	biblioVar   = "biblio"
	sdoMapVar   = "sdoMap"
	sectionsVar = "idToSection"
)

// Load reads a bibliography payload. The format follows the extension:
// .json, .yaml/.yml, or .js for the generator script embedding the payload.
func Load(path string) (types.Bibliography, error) {
	var b types.Bibliography
	if err := decodeFile(path, biblioVar, &b); err != nil {
		return types.Bibliography{}, err
	}
	if b.RefsByClause == nil {
		b.RefsByClause = map[string][]string{}
	}
	return b, nil
}

// LoadSDOMap reads the syntax-directed operation map.
func LoadSDOMap(path string) (types.SDOMap, error) {
	m := types.SDOMap{}
	if err := decodeFile(path, sdoMapVar, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadSections reads the multipage id → section map used by Linker.
func LoadSections(path string) (map[string]string, error) {
	m := map[string]string{}
	if err := decodeFile(path, sectionsVar, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadIndex loads the bibliography at path and builds its Index.
func LoadIndex(path string) (*Index, error) {
	b, err := Load(path)
	if err != nil {
		return nil, err
	}
	idx, err := NewIndex(b)
	if err != nil {
		return nil, fmt.Errorf("indexing %s: %w", path, err)
	}
	return idx, nil
}

func decodeFile(path, jsVar string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".js":
		payload, err := ExtractPayload(data, jsVar)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := json.Unmarshal(payload, v); err != nil {
			return fmt.Errorf("parsing %s payload in %s: %w", jsVar, path, err)
		}
	default:
		return fmt.Errorf("unsupported payload format %q: use .json, .yaml, or .js", filepath.Ext(path))
	}
	return nil
}

// ExtractPayload returns the JSON text assigned to name in a generator
// script of the form: let name = JSON.parse(`...`);
func ExtractPayload(script []byte, name string) ([]byte, error) {
	re := regexp.MustCompile(`(?s)\b(?:let|var|const)\s+` + regexp.QuoteMeta(name) +
		"\\s*=\\s*JSON\\.parse\\(`((?:[^`\\\\]|\\\\.)*)`\\)")
	m := re.FindSubmatch(script)
	if m == nil {
		return nil, fmt.Errorf("no embedded %s payload found", name)
	}
	return unescapeTemplate(m[1]), nil
}

// unescapeTemplate undoes the escaping a generator applies when placing JSON
// inside a template literal: \\, \` and \$.
func unescapeTemplate(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+1 < len(b) {
			switch b[i+1] {
			case '\\', '`', '$':
				out = append(out, b[i+1])
				i++
				continue
			}
		}
		out = append(out, b[i])
	}
	return out
}
