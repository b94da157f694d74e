package sim

import (
	"embed"
	"fmt"
)

//go:embed scenarios/*.yaml
var builtin embed.FS

// BuiltinScenario возвращает встроенный сценарий по имени ("doorway")
func BuiltinScenario(name string) (*Scenario, error) {
	raw, err := builtin.ReadFile("scenarios/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("builtin scenario %q: %w", name, err)
	}
	return ParseScenario(raw)
}
