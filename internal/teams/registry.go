// Package teams resolves the varying team representations seen in upstream
// schedules (numeric ids, abbreviations, name variants) to a single canonical
// identifier. The mapping is static, loaded from YAML, and validated up front
// so a miss at resolution time signals a data-source contract change rather
// than a per-game condition.
package teams

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	domainteams "mlb-insights-service/internal/domain/teams"
)

//go:embed teams.yaml
var embeddedRegistry []byte

type registryFile struct {
	Teams []registryEntry `yaml:"teams"`
}

type registryEntry struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	FullName     string   `yaml:"full_name"`
	Abbreviation string   `yaml:"abbreviation"`
	League       string   `yaml:"league"`
	Division     string   `yaml:"division"`
	ExternalID   int      `yaml:"external_id"`
	Aliases      []string `yaml:"aliases"`
}

// Registry holds the canonical team table and its lookup indexes.
type Registry struct {
	byID       map[string]domainteams.Team
	byAlias    map[string]string // normalized alias -> canonical id
	byExternal map[int]string    // upstream numeric id -> canonical id
}

// Load builds a Registry from the embedded table.
func Load() (*Registry, error) {
	return parse(embeddedRegistry)
}

// LoadFile builds a Registry from a YAML file on disk, replacing the
// embedded table entirely.
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("teams: read registry: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("teams: parse registry: %w", err)
	}
	if len(file.Teams) == 0 {
		return nil, fmt.Errorf("teams: registry has no entries")
	}

	r := &Registry{
		byID:       make(map[string]domainteams.Team, len(file.Teams)),
		byAlias:    make(map[string]string),
		byExternal: make(map[int]string),
	}

	for _, e := range file.Teams {
		if e.ID == "" || e.FullName == "" || e.Abbreviation == "" {
			return nil, fmt.Errorf("teams: entry %q missing id, full_name, or abbreviation", e.FullName)
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("teams: duplicate canonical id %q", e.ID)
		}
		team := domainteams.Team{
			ID:           e.ID,
			Name:         e.Name,
			FullName:     e.FullName,
			Abbreviation: e.Abbreviation,
			League:       e.League,
			Division:     e.Division,
			ExternalID:   e.ExternalID,
		}
		r.byID[e.ID] = team

		if e.ExternalID != 0 {
			if owner, dup := r.byExternal[e.ExternalID]; dup {
				return nil, fmt.Errorf("teams: external id %d claimed by %q and %q", e.ExternalID, owner, e.ID)
			}
			r.byExternal[e.ExternalID] = e.ID
		}

		aliases := append([]string{e.ID, e.Name, e.FullName, e.Abbreviation}, e.Aliases...)
		for _, alias := range aliases {
			key := normalizeAlias(alias)
			if key == "" {
				continue
			}
			if owner, dup := r.byAlias[key]; dup && owner != e.ID {
				return nil, fmt.Errorf("teams: alias %q claimed by %q and %q", alias, owner, e.ID)
			}
			r.byAlias[key] = e.ID
		}
	}

	return r, nil
}

// Resolve maps a team name, abbreviation, or canonical id to its Team.
func (r *Registry) Resolve(name string) (domainteams.Team, error) {
	id, ok := r.byAlias[normalizeAlias(name)]
	if !ok {
		return domainteams.Team{}, &UnknownTeamError{Name: name}
	}
	return r.byID[id], nil
}

// ResolveExternal maps an upstream numeric id to its Team.
func (r *Registry) ResolveExternal(externalID int) (domainteams.Team, error) {
	id, ok := r.byExternal[externalID]
	if !ok {
		return domainteams.Team{}, &UnknownTeamError{ExternalID: externalID}
	}
	return r.byID[id], nil
}

// All returns every canonical team sorted by id.
func (r *Registry) All() []domainteams.Team {
	out := make([]domainteams.Team, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func normalizeAlias(alias string) string {
	return strings.ToLower(strings.Join(strings.Fields(alias), " "))
}
