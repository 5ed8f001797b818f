// Package layout reads and writes the editor's saved automaton layouts and translates them to and
// from the fsa engine.
package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Position is a state's place on the editor canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TransitionRecord is one labelled edge. Char is a single character or the epsilon marker.
type TransitionRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
	Char string `json:"char"`
}

// Layout is a saved editor session.
type Layout struct {
	States      map[string]Position `json:"states"`
	Transitions []TransitionRecord  `json:"transitions"`
	StartState  *string             `json:"start_state"`
	FinalStates []string            `json:"final_states"`
}

// Decode reads a layout from r.
func Decode(r io.Reader) (*Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if l.States == nil {
		l.States = make(map[string]Position)
	}
	return &l, nil
}

// Encode writes the layout to w, indented like the editor's own files.
func (l *Layout) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return nil
}

// Load reads a layout file.
func Load(filename string) (*Layout, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Save writes the layout to filename, replacing any existing file.
func (l *Layout) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create layout file: %w", err)
	}
	if err := l.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
