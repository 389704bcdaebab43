package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExitCleanlyOnHelp(t *testing.T) {
	outW := &bytes.Buffer{}
	logW := &bytes.Buffer{}

	err := run(outW, logW, []string{"-h"})

	require.NoError(t, err)
	assert.Contains(t, logW.String(), "Usage:")
	assert.Empty(t, outW.String())
}

func TestRun_RecoversStartupPanicIntoError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("program {\n"), 0o600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "application startup panicked")
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ResolvesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
program {
  user = "svc"
  cluster "east" {
    subject_group "payments" {
      number_of_subjects = 2
    }
  }
}
`), 0o600))
	outW := &bytes.Buffer{}

	err := run(outW, &bytes.Buffer{}, []string{path})

	require.NoError(t, err)
	var plan []map[string]any
	require.NoError(t, json.Unmarshal(outW.Bytes(), &plan))
	assert.Len(t, plan, 2)
}

func TestSelectLoader_PicksByExtension(t *testing.T) {
	assert.Equal(t, "*yamlloader.Loader", fmt.Sprintf("%T", selectLoader("config.yaml")))
	assert.Equal(t, "*yamlloader.Loader", fmt.Sprintf("%T", selectLoader("config.yml")))
	assert.Equal(t, "*hclloader.Loader", fmt.Sprintf("%T", selectLoader("config.hcl")))
	assert.Equal(t, "*hclloader.Loader", fmt.Sprintf("%T", selectLoader("some/dir")))
}
