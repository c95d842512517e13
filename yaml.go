package squads

import (
	"io"

	"gopkg.in/yaml.v3"
)

// renderYAML writes one YAML document per call, separating consecutive
// documents with "---".
func (r *Renderer) renderYAML(in Input) error {
	if in == nil {
		r.log.Warn("render.unsupported_input", "type", "<nil>")
	}
	if r.written > 0 {
		if _, err := io.WriteString(r.w, "---\n"); err != nil {
			return err
		}
	}
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(r.tree(in)); err != nil {
		return err
	}
	return enc.Close()
}
