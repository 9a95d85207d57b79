package inputs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dnd-it/action-workflow-files/workflow"
)

// ParseMapping decodes a YAML mapping into entries in document order.
// Scalar values keep their literal text, so "1.10" stays "1.10".
func ParseMapping(content string) (workflow.Mapping, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(content), &node); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of names to values")
	}

	var entries workflow.Mapping
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: key must be a scalar", key.Line)
		}
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of '%s' must be a scalar", value.Line, key.Value)
		}
		if value.Tag == "!!null" {
			return nil, fmt.Errorf("line %d: value of '%s' is null", value.Line, key.Value)
		}
		entries = append(entries, workflow.KV(key.Value, value.Value))
	}
	return entries, nil
}
