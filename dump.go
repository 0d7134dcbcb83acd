// File: patchopt/dump.go
package patchopt

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Debug returns a formatted listing of every option and its state, in
// insertion order. Values are read without validation so a broken option
// still shows up.
func (r *Registry) Debug() string {
	var b strings.Builder
	b.WriteString("Option registry:\n")

	for _, o := range r.All() {
		b.WriteString(fmt.Sprintf("  %s (%s):\n", o.Key(), o.Kind()))
		if o.Title() != "" {
			b.WriteString(fmt.Sprintf("    Title: %s\n", o.Title()))
		}
		if o.Required() {
			b.WriteString("    Required: true\n")
		}
		b.WriteString(fmt.Sprintf("    Default: %s\n", formatRaw(o.DefaultAny())))
		cur, _ := o.Raw()
		b.WriteString(fmt.Sprintf("    Current: %s\n", formatRaw(cur)))
		for _, h := range o.Hints() {
			b.WriteString(fmt.Sprintf("    Choice %q: %s\n", h.Label, formatRaw(h.Value)))
		}
	}

	return b.String()
}

// Dump writes the present current values to w in TOML form for inspection.
// Absent values are omitted. This is a diagnostic aid; persisting option
// values is the host framework's job.
func (r *Registry) Dump(w io.Writer) error {
	data := make(map[string]any, r.Len())
	for _, o := range r.All() {
		if v, ok := o.Raw(); ok {
			data[o.Key()] = v
		}
	}

	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode option values to TOML: %w", err)
	}
	return nil
}

func formatRaw(v any) string {
	if v == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%v", v)
}
