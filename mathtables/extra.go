package mathtables

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadExtra parses a YAML document of additional symbol names and merges
// them into the runtime name table consulted by SymbolByName, ahead of the
// built-in shim table. The document shape is:
//
//	symbols:
//	  - name: "therefore"
//	    codepoint: 0x2234
//	    atom_type: relation
//
// Calling LoadExtra more than once merges each document in turn; later
// calls win over earlier ones for a repeated name.
func LoadExtra(data []byte) error {
	var doc extraFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse extra symbol table: %w", err)
	}
	for _, e := range doc.Symbols {
		at, ok := atomTypeByName[e.AtomType]
		if !ok {
			return fmt.Errorf("extra symbol %q: unknown atom type %q", e.Name, e.AtomType)
		}
		extraIndex[e.Name] = sym(e.Codepoint, at)
	}
	return nil
}

// ResetExtra clears the runtime-loaded extra table, restoring SymbolByName
// to the built-in shim table only. Exposed for tests.
func ResetExtra() {
	for k := range extraIndex {
		delete(extraIndex, k)
	}
}
