package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flow is the YAML model for the demo: an ordered list of scenes, each a
// markdown body plus a choice table mapping user input to the next scene.
// A scene without choices is terminal. This is demo input only; the machine
// itself has no file format.
type Flow struct {
	Title  string  `yaml:"title"`
	Scenes []Scene `yaml:"scenes"`
}

// Scene describes one state of the demo flow.
type Scene struct {
	ID      string            `yaml:"id"`
	Title   string            `yaml:"title"`
	Body    string            `yaml:"body"`
	Choices map[string]string `yaml:"choices"`
}

// Terminal reports whether the scene has no outgoing choices.
func (s Scene) Terminal() bool {
	return len(s.Choices) == 0
}

// Next resolves user input to the target scene id, case-insensitively.
func (s Scene) Next(input string) (string, bool) {
	for choice, target := range s.Choices {
		if strings.EqualFold(choice, strings.TrimSpace(input)) {
			return target, true
		}
	}
	return "", false
}

// Options returns the accepted inputs in sorted order, for prompting.
func (s Scene) Options() []string {
	opts := make([]string, 0, len(s.Choices))
	for choice := range s.Choices {
		opts = append(opts, choice)
	}
	sort.Strings(opts)
	return opts
}

// LoadFlow reads and validates a flow file.
func LoadFlow(path string) (*Flow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flow: %w", err)
	}
	return ParseFlow(raw)
}

// ParseFlow parses and validates raw YAML flow content.
func ParseFlow(raw []byte) (*Flow, error) {
	var flow Flow
	if err := yaml.Unmarshal(raw, &flow); err != nil {
		return nil, fmt.Errorf("parse flow: %w", err)
	}
	if err := flow.validate(); err != nil {
		return nil, err
	}
	return &flow, nil
}

// Scene returns the scene with the given id.
func (f *Flow) Scene(id string) (Scene, bool) {
	for _, s := range f.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return Scene{}, false
}

func (f *Flow) validate() error {
	if len(f.Scenes) == 0 {
		return fmt.Errorf("flow has no scenes")
	}

	ids := make(map[string]bool, len(f.Scenes))
	for _, s := range f.Scenes {
		if s.ID == "" {
			return fmt.Errorf("scene %q has no id", s.Title)
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate scene id %q", s.ID)
		}
		ids[s.ID] = true
	}

	for _, s := range f.Scenes {
		for choice, target := range s.Choices {
			if !ids[target] {
				return fmt.Errorf("scene %q: choice %q points to unknown scene %q", s.ID, choice, target)
			}
		}
	}
	return nil
}
