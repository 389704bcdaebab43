package app

import (
	"encoding/json"
	"io"

	"github.com/vk/jvmtune/internal/resolver"
)

// writePlan emits the resolved plan as indented JSON, the boundary
// format the experiment orchestrator consumes.
func writePlan(w io.Writer, plan []resolver.ResolvedSubjectConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}
