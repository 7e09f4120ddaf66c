package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codetech/vendus-go/internal/constants"
	"github.com/codetech/vendus-go/pkg/vendus"
	"gopkg.in/yaml.v3"
)

// parseFields turns key=value pairs into params. Dotted keys build nested
// params, so items.0.qty=2 is sent as items[0][qty]=2.
func parseFields(fields []string) (vendus.Params, error) {
	params := vendus.Params{}

	err := applyFields(params, fields)
	if err != nil {
		return nil, err
	}

	return params, nil
}

func applyFields(params vendus.Params, fields []string) error {
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: %q", constants.ErrInvalidFieldFormat, field)
		}

		err := setFieldPath(params, strings.Split(strings.TrimSpace(key), "."), value)
		if err != nil {
			return err
		}
	}

	return nil
}

func setFieldPath(params vendus.Params, path []string, value string) error {
	for _, segment := range path {
		if segment == "" {
			return fmt.Errorf("%w: %s", constants.ErrInvalidFieldPath, strings.Join(path, "."))
		}
	}

	current := params

	for i, segment := range path[:len(path)-1] {
		next, exists := current[segment]
		if !exists {
			child := vendus.Params{}
			current[segment] = child
			current = child

			continue
		}

		child, ok := next.(vendus.Params)
		if !ok {
			return fmt.Errorf("%w: %s", constants.ErrInvalidFieldPath, strings.Join(path[:i+1], "."))
		}

		current = child
	}

	last := path[len(path)-1]
	if _, nested := current[last].(vendus.Params); nested {
		return fmt.Errorf("%w: %s", constants.ErrInvalidFieldPath, strings.Join(path, "."))
	}

	current[last] = value

	return nil
}

// loadParamsFile reads a YAML or JSON mapping.
func loadParamsFile(path string) (vendus.Params, error) {
	if strings.Contains(path, "..") {
		return nil, fmt.Errorf("%w: %s", constants.ErrDirectoryTraversalDetected, path)
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", constants.ErrNotRegularFile, cleanPath)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}

	var raw map[string]any

	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidParamsFile, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidParamsFile, cleanPath)
	}

	return toParams(raw), nil
}

// toParams converts nested mappings into Params so dotted fields can be
// merged into them.
func toParams(raw map[string]any) vendus.Params {
	params := make(vendus.Params, len(raw))

	for key, value := range raw {
		if nested, ok := value.(map[string]any); ok {
			params[key] = toParams(nested)

			continue
		}

		params[key] = value
	}

	return params
}

// buildBodyParams loads --from-file first and applies --field values on top.
func buildBodyParams(fields []string, file string) (vendus.Params, error) {
	if len(fields) == 0 && file == "" {
		return nil, constants.ErrNoFieldsSpecified
	}

	params := vendus.Params{}

	if file != "" {
		loaded, err := loadParamsFile(file)
		if err != nil {
			return nil, err
		}

		params = loaded
	}

	err := applyFields(params, fields)
	if err != nil {
		return nil, err
	}

	return params, nil
}
