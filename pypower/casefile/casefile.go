// Package casefile loads and saves power-network cases as JSON or YAML
// documents. Saves are atomic (temp file + rename) and guarded by a
// cross-process file lock so concurrent tools cannot interleave writes.
package casefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/huandalu/pypower/types"
)

// File locking constants.
const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// Load reads a case from path. The format is chosen by extension: .json, or
// .yaml/.yml. Extension field trees are normalized so nested numeric arrays
// come back as matrices.
func Load(path string) (*types.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("casefile: read %s: %w", path, err)
	}
	c := &types.Case{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("casefile: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("casefile: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("casefile: unsupported extension %q", ext)
	}
	normalizeCase(c)
	return c, nil
}

// Save writes the case to path atomically, in the format implied by the
// extension, holding a sibling .lock file lock for the duration of the
// write.
func Save(path string, c *types.Case) error {
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("casefile: unsupported extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("casefile: encode case: %w", err)
	}

	// Lock a separate file: the data file itself is replaced by rename.
	fileLock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("casefile: acquire lock for %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("casefile: could not lock %s", path)
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("casefile: failed to release lock")
		}
	}()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("casefile: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("casefile: rename temp file: %w", err)
	}
	return nil
}

// normalizeCase rebuilds matrix leaves inside extension field trees, which
// generic JSON/YAML decoding leaves as nested any slices.
func normalizeCase(c *types.Case) {
	c.Fields = normalizeFields(c.Fields)
	if c.Order != nil {
		if c.Order.Int != nil {
			c.Order.Int.Fields = normalizeFields(c.Order.Int.Fields)
		}
		if c.Order.Ext != nil {
			c.Order.Ext.Fields = normalizeFields(c.Order.Ext.Fields)
		}
	}
}

func normalizeFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = normalizeFieldValue(v)
	}
	return out
}

func normalizeFieldValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeFields(t)
	case []any:
		if m, ok := matrixFromAny(t); ok {
			return m
		}
	}
	return v
}

// matrixFromAny converts a decoded array-of-arrays of numbers to a matrix.
func matrixFromAny(rows []any) (*types.Matrix, bool) {
	parsed := make([][]float64, len(rows))
	for i, rv := range rows {
		cells, ok := rv.([]any)
		if !ok {
			return nil, false
		}
		row := make([]float64, len(cells))
		for j, cv := range cells {
			switch n := cv.(type) {
			case float64:
				row[j] = n
			case int:
				row[j] = float64(n)
			case int64:
				row[j] = float64(n)
			default:
				return nil, false
			}
		}
		parsed[i] = row
	}
	m, err := types.MatrixFromRows(parsed)
	if err != nil {
		return nil, false
	}
	return m, true
}
