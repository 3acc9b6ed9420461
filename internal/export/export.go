// Package export renders the roster document consumed by the sprite
// renderer: one JSON object per player carrying its appearance block and
// derived attribute ratings.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"hoopvision/internal/appearance"
	"hoopvision/internal/stats"
)

// Player is one roster entry.
type Player struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Team       string            `json:"team"`
	Appearance appearance.Result `json:"appearance"`
	Attributes stats.Ratings     `json:"attributes"`
}

// Document is a full roster export. GeneratedAt is supplied by the caller
// so identical rosters produce identical documents.
type Document struct {
	League      string    `json:"league"`
	Season      string    `json:"season"`
	GeneratedAt time.Time `json:"generated_at"`
	Players     []Player  `json:"players"`
}

// Write emits doc as indented JSON. Players are ordered by team, name
// then id, so the same roster always serializes byte-identically no
// matter how it was assembled.
func Write(w io.Writer, doc Document) error {
	players := make([]Player, len(doc.Players))
	copy(players, doc.Players)
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	doc.Players = players

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return nil
}

// WriteFile writes doc to path, creating or truncating it.
func WriteFile(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create roster file: %w", err)
	}
	if err := Write(f, doc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close roster file: %w", err)
	}
	return nil
}

// Read parses a document previously produced by Write.
func Read(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode roster: %w", err)
	}
	return doc, nil
}
