// Package theme maintains named colour palettes, the active theme selection,
// and the publication of derived colour variants to a styling sink.
package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/jmylchreest/shade/internal/colour"
)

// Role is the semantic purpose of a theme colour (e.g. "background").
type Role string

// Theme roles. Names are camelCase and double as JSON keys and CSS variable suffixes.
const (
	RoleBackground      Role = "background"
	RoleForeground      Role = "foreground"
	RoleDisabled        Role = "disabled"
	RoleText            Role = "text"
	RoleAccent          Role = "accent"
	RoleOutline         Role = "outline"
	RoleButton          Role = "button"
	RoleButtonText      Role = "buttonText"
	RoleFocus           Role = "focus"
	RoleAffirmative     Role = "affirmative"
	RoleAffirmativeText Role = "affirmativeText"
	RoleNegative        Role = "negative"
	RoleNegativeText    Role = "negativeText"
	RoleWarn            Role = "warn"
	RoleWarnText        Role = "warnText"
	RoleInfo            Role = "info"
	RoleInfoText        Role = "infoText"
)

var allRoles = []Role{
	RoleBackground,
	RoleForeground,
	RoleDisabled,
	RoleText,
	RoleAccent,
	RoleOutline,
	RoleButton,
	RoleButtonText,
	RoleFocus,
	RoleAffirmative,
	RoleAffirmativeText,
	RoleNegative,
	RoleNegativeText,
	RoleWarn,
	RoleWarnText,
	RoleInfo,
	RoleInfoText,
}

// AllRoles returns every role in publication order.
func AllRoles() []Role {
	return slices.Clone(allRoles)
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return slices.Contains(allRoles, r)
}

// ErrInvalidTheme is returned when a theme fails validation.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is a named mapping from role to hex colour string.
type Theme struct {
	Name    string
	Colours map[Role]string
}

// Get returns the colour assigned to role, or "" if unset.
func (t Theme) Get(role Role) string {
	return t.Colours[role]
}

// Clone returns a deep copy of the theme.
func (t Theme) Clone() Theme {
	colours := make(map[Role]string, len(t.Colours))
	for role, c := range t.Colours {
		colours[role] = c
	}
	return Theme{Name: t.Name, Colours: colours}
}

// Merge overwrites the theme's colours with every entry in patch.
func (t *Theme) Merge(patch map[Role]string) {
	if t.Colours == nil {
		t.Colours = make(map[Role]string, len(patch))
	}
	for role, c := range patch {
		t.Colours[role] = c
	}
}

// Validate checks the theme has a name, only known roles, and strictly valid hex colours.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTheme)
	}

	var errs []error
	for _, role := range sortedRoles(t.Colours) {
		if !role.Valid() {
			errs = append(errs, fmt.Errorf("%w: unknown role %q", ErrInvalidTheme, role))
			continue
		}
		if c := t.Colours[role]; c != "" {
			if _, err := colour.ParseHex(c); err != nil {
				errs = append(errs, fmt.Errorf("theme %s role %s: %w", t.Name, role, err))
			}
		}
	}
	return errors.Join(errs...)
}

// MarshalJSON encodes the theme as a flat object: name first, then roles in order.
func (t Theme) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	name, err := json.Marshal(t.Name)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"name":`)
	buf.Write(name)

	for _, role := range allRoles {
		c, ok := t.Colours[role]
		if !ok {
			continue
		}
		value, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, `,%q:`, string(role))
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat theme object. Unknown keys are rejected.
func (t *Theme) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}

	name := raw["name"]
	delete(raw, "name")

	colours := make(map[Role]string, len(raw))
	for key, c := range raw {
		role := Role(key)
		if !role.Valid() {
			return fmt.Errorf("%w: unknown role %q", ErrInvalidTheme, key)
		}
		colours[role] = c
	}

	t.Name = name
	t.Colours = colours
	return nil
}

func sortedRoles(colours map[Role]string) []Role {
	roles := make([]Role, 0, len(colours))
	for role := range colours {
		roles = append(roles, role)
	}
	slices.Sort(roles)
	return roles
}
