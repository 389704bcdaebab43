// Package hclloader implements config.Loader for HCL experiment files.
package hclloader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/jvmtune/internal/config"
	"github.com/vk/jvmtune/internal/ctxlog"
	"github.com/vk/jvmtune/internal/fsutil"
	"github.com/vk/jvmtune/internal/schema"
)

// Loader loads experiment configuration from .hcl files.
type Loader struct{}

// NewLoader returns a ready-to-use HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds every .hcl file under the given paths, decodes them, and
// stitches the result into one program tree. Exactly one file must
// carry the `program` block; top-level `cluster` blocks in any file are
// appended to it, which lets users split large fleets across files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.ProgramConfig, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtensions(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find config files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl config files found in %v", paths)
	}
	logger.Debug("Loading experiment configuration.", "files", len(files))

	parser := hclparse.NewParser()
	var program *schema.Program
	var programFile string
	var strayClusters []*schema.Cluster

	for _, file := range files {
		parsed, err := decodeFile(parser, file)
		if err != nil {
			return nil, err
		}
		if parsed.Program != nil {
			if program != nil {
				return nil, fmt.Errorf("duplicate program block: defined in both %s and %s", programFile, file)
			}
			program = parsed.Program
			programFile = file
		}
		strayClusters = append(strayClusters, parsed.Clusters...)
	}

	if program == nil {
		return nil, fmt.Errorf("no program block found in %v", paths)
	}
	program.Clusters = append(program.Clusters, strayClusters...)

	return translateProgram(program), nil
}

// decodeFile parses a single HCL file into the schema structs.
func decodeFile(parser *hclparse.Parser, filePath string) (*schema.File, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed schema.File
	diags = gohcl.DecodeBody(hclFile.Body, baseEvalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}
	return &parsed, nil
}

// baseEvalContext exposes size-unit constants to expressions, so range
// bounds can read `ceiling = 8 * gb` instead of a bare megabyte count.
// Memory knobs are denominated in megabytes, hence mb = 1.
func baseEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"mb": cty.NumberIntVal(1),
			"gb": cty.NumberIntVal(1024),
			"tb": cty.NumberIntVal(1024 * 1024),
		},
	}
}
