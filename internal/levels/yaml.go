package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Order string   `yaml:"order,omitempty"`
	Rows  []string `yaml:"rows"`
}

// ParseYAML parses a YAML level file. Shape is checked later against the
// board the level is loaded into.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, ValidationError{Code: CodeMissingID, Message: "level has no id"}
	}

	order := Order(yl.Order)
	switch order {
	case "":
		order = TopDown
	case TopDown, BottomUp:
	default:
		return Level{}, ValidationError{
			Code:    CodeBadOrder,
			Message: fmt.Sprintf("level %q has unknown order %q", yl.ID, yl.Order),
		}
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:    yl.ID,
		Name:  name,
		Order: order,
		Rows:  yl.Rows,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
