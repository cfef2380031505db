package tags

import (
	"fmt"

	"github.com/npillmayer/rtlfix"
)

// A Container gives access to the native tag fields of one audio file.
// Implementations sit close to the file format; package tagio provides
// them for MP3 and FLAC.
type Container interface {
	// Get returns all values stored under a native key, in order. A key
	// the file does not carry yields an empty slice.
	Get(key string) []string
	// Set replaces the values stored under a native key.
	Set(key string, values []string) error
}

// A Change records one rewritten tag value.
type Change struct {
	Field Field  // the logical field
	Key   string // the native key it resolved to
	Index int    // value position, for multi-valued fields
	Old   string // value before the transform
	New   string // value written back
}

// Simple stringer for reporting.
func (ch Change) String() string {
	return fmt.Sprintf("%s[%d]: %q -> %q", ch.Key, ch.Index, ch.Old, ch.New)
}

// Walk visits every logical field the container carries, in field
// order, without changing anything. Fields absent in the format and
// keys absent in the container are skipped. Alias keys are visited
// after the primary key of their field.
func Walk(c Container, f Format, visit func(fld Field, key string, values []string)) error {
	if !f.Supported() {
		return ErrUnsupportedFormat
	}
	for fld := Title; fld < numFields; fld++ {
		keys, err := keysForField(f, fld)
		if err != nil {
			return err
		}
		for _, key := range keys {
			if values := c.Get(key); len(values) > 0 {
				visit(fld, key, values)
			}
		}
	}
	return nil
}

// Apply runs transform over every logical field the container carries
// and writes back those fields whose value changed. Values of a
// multi-valued field are transformed independently and keep their
// order. Fields absent in the format and keys absent in the container
// are skipped silently, alias keys are processed like primary keys.
// Nothing is written for a field whose values all come back unchanged.
//
// The returned changes hold one entry per rewritten value, in field
// order, and are suitable for dry-run reporting. A Set failure stops
// the walk and returns the changes made so far together with the error.
func Apply(c Container, f Format, transform rtlfix.Transform) ([]Change, error) {
	if !f.Supported() {
		return nil, ErrUnsupportedFormat
	}
	if transform == nil {
		return nil, nil
	}
	var changes []Change
	for fld := Title; fld < numFields; fld++ {
		keys, err := keysForField(f, fld)
		if err != nil {
			return changes, err
		}
		for _, key := range keys {
			values := c.Get(key)
			if len(values) == 0 {
				continue
			}
			out := make([]string, len(values))
			dirty := false
			for i, value := range values {
				fixed := transform(value)
				out[i] = fixed
				if fixed != value {
					dirty = true
					changes = append(changes, Change{
						Field: fld, Key: key, Index: i, Old: value, New: fixed,
					})
				}
			}
			if !dirty {
				continue
			}
			if err := c.Set(key, out); err != nil {
				return changes, fmt.Errorf("tag mapper: cannot write %s: %w", key, err)
			}
			T().Debugf("rewrote %d value(s) of %s (%s)", len(values), fld, key)
		}
	}
	return changes, nil
}
