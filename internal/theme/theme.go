// Package theme provides named color themes for the terminal renderer.
// Built-in themes are embedded; user themes load from YAML files.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is a color set applied to all visual elements. Entities render as
// solid half-block cells, so each entity field is a single block color.
// Colors are lipgloss-compatible strings: ANSI indexes ("10") or hex
// ("#32cd32").
type Theme struct {
	Name string `yaml:"name"`

	SnakeHead string `yaml:"snake_head"`
	SnakeBody string `yaml:"snake_body"`
	SnakeTail string `yaml:"snake_tail"`
	Food      string `yaml:"food"`
	BonusFood string `yaml:"bonus_food"`

	FieldBG  string `yaml:"field_bg"`
	UIText   string `yaml:"ui_text"`
	UIAccent string `yaml:"ui_accent"`
	UIMuted  string `yaml:"ui_muted"`
}

//go:embed themes.yaml
var builtinYAML []byte

type themeFile struct {
	Themes []Theme `yaml:"themes"`
}

// Fallback is the emergency theme used when no built-in or user themes
// load.
func Fallback() Theme {
	return Theme{
		Name:      "fallback",
		SnakeHead: "15",
		SnakeBody: "4",
		SnakeTail: "8",
		Food:      "1",
		BonusFood: "11",
		FieldBG:   "0",
		UIText:    "15",
		UIAccent:  "2",
		UIMuted:   "8",
	}
}

// Builtin returns the embedded themes, in declaration order. Always
// returns at least the fallback theme.
func Builtin() []Theme {
	var f themeFile
	if err := yaml.Unmarshal(builtinYAML, &f); err != nil || len(f.Themes) == 0 {
		return []Theme{Fallback()}
	}
	return f.Themes
}

// LoadDir reads user themes from every .yaml file in dir. A missing
// directory is not an error; malformed files are skipped.
func LoadDir(dir string) []Theme {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var themes []Theme
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var f themeFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			continue
		}
		for _, t := range f.Themes {
			if t.Name != "" {
				themes = append(themes, t)
			}
		}
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes
}

// ByName resolves a theme by name among the built-ins and the user
// themes in userDir. An empty name selects the first built-in.
func ByName(name, userDir string) (Theme, error) {
	all := append(Builtin(), LoadDir(userDir)...)
	if name == "" {
		return all[0], nil
	}
	for _, t := range all {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}

	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	return Theme{}, fmt.Errorf("theme: unknown theme %q (available: %s)", name, strings.Join(names, ", "))
}
