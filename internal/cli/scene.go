package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// Shared-bag keys the scene states agree on.
const (
	keyVisits = "visits"
	keyPath   = "path"
)

// sceneState adapts one Flow scene to the domain.State contract. All scenes
// of one flow share the machine's bag, which they use to keep a visit count
// and the path taken; the terminal scene prints the summary on entry.
type sceneState struct {
	scene  Scene
	out    io.Writer
	render func(string) string
}

func (s *sceneState) Initialize(ctx context.Context, data domain.SharedData) error {
	if !data.Has(keyVisits) {
		data.Set(keyVisits, 0)
		data.Set(keyPath, []string{})
	}
	return nil
}

func (s *sceneState) Load(ctx context.Context, prev domain.StateID, transition domain.TransitionFunc, data domain.SharedData) error {
	visits, _ := data.Get(keyVisits)
	data.Set(keyVisits, visits.(int)+1)

	path, _ := data.Get(keyPath)
	data.Set(keyPath, append(path.([]string), s.scene.ID))

	body := s.scene.Body
	if s.scene.Title != "" {
		body = "# " + s.scene.Title + "\n\n" + body
	}
	fmt.Fprint(s.out, s.render(body))

	if s.scene.Terminal() {
		s.printSummary(data)
	}
	return nil
}

func (s *sceneState) Unload(ctx context.Context, next domain.StateID, data domain.SharedData) error {
	return nil
}

func (s *sceneState) printSummary(data domain.SharedData) {
	var trail struct {
		Visits int      `mapstructure:"visits"`
		Path   []string `mapstructure:"path"`
	}
	if err := data.Decode(&trail); err != nil {
		return
	}
	fmt.Fprintf(s.out, "\n%d scenes visited: %s\n", trail.Visits, strings.Join(trail.Path, " -> "))
}
