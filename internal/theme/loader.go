package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadFile reads themes from a JSON file holding a single theme object or an
// array of them. With strict set every theme must pass Validate.
func LoadFile(path string, strict bool) ([]Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme file: %w", err)
	}
	defer f.Close()

	themes, err := LoadReader(f, strict)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return themes, nil
}

// LoadReader decodes themes from r. See LoadFile.
func LoadReader(r io.Reader, strict bool) ([]Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidTheme)
	}

	var themes []Theme
	if data[0] == '[' {
		if err := json.Unmarshal(data, &themes); err != nil {
			return nil, fmt.Errorf("failed to parse themes: %w", err)
		}
	} else {
		var t Theme
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("failed to parse theme: %w", err)
		}
		themes = []Theme{t}
	}

	var errs []error
	for i, t := range themes {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("%w: theme %d has no name", ErrInvalidTheme, i))
			continue
		}
		if strict {
			if err := t.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return themes, nil
}

// SaveFile writes themes to path as an indented JSON array.
func SaveFile(path string, themes []Theme) error {
	data, err := json.MarshalIndent(themes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode themes: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}
