package roster

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Member is one roster entry.
type Member struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// rawRoster is the on-disk YAML shape.
type rawRoster struct {
	Users []Member `yaml:"users"`
}

// Roster maps user IDs to display names. It is loaded once at startup and
// read-only afterwards.
type Roster struct {
	names map[string]string
}

// Load reads the roster file at path. A missing file yields an empty roster.
func Load(path string) (*Roster, error) {
	r := &Roster{names: make(map[string]string)}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil // no roster configured
	}
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}

	var raw rawRoster
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}

	for i, m := range raw.Users {
		if m.ID == "" {
			return nil, fmt.Errorf("roster %s: entry %d: id is required", path, i)
		}
		if _, dup := r.names[m.ID]; dup {
			return nil, fmt.Errorf("roster %s: duplicate id %q", path, m.ID)
		}
		r.names[m.ID] = m.Name
	}
	return r, nil
}

// DisplayName returns the roster name for userID, or "User <id>" when the
// user is not listed or has no name.
func (r *Roster) DisplayName(userID string) string {
	if name := r.names[userID]; name != "" {
		return name
	}
	return fmt.Sprintf("User %s", userID)
}

// IDs returns every listed user ID in ascending order.
func (r *Roster) IDs() []string {
	ids := make([]string, 0, len(r.names))
	for id := range r.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Roster) Len() int {
	return len(r.names)
}
