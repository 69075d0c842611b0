package langs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"ecmascript-variant-A", "ecmascript-variant-B", "python", "shell"}, r.Names())
}

func TestRegistryGetUnknown(t *testing.T) {
	r := Default()
	_, ok := r.Get("cobol")
	assert.False(t, ok)
}

func TestEcmaScriptVariantAWritesManifestOnlyWhenDepsPresent(t *testing.T) {
	p, ok := Default().Get("ecmascript-variant-A")
	require.True(t, ok)

	dir := t.TempDir()
	require.NoError(t, p.Materialize(dir, MaterializeOptions{Code: "console.log(1)"}))
	_, err := os.ReadFile(filepath.Join(dir, "package.json"))
	assert.Error(t, err, "no package.json expected when no dependencies were declared")

	require.NoError(t, p.Materialize(dir, MaterializeOptions{Code: "console.log(1)", Dependencies: []string{"lodash@4.17.21"}}))
	body, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "lodash")
	assert.Contains(t, string(body), "4.17.21")
}

func TestPythonInlineCommandResolvesInterpreterAtRuntime(t *testing.T) {
	p, ok := Default().Get("python")
	require.True(t, ok)
	argv := p.InlineCommand(false)
	assert.Contains(t, argv, "sh")
}
