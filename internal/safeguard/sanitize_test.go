package safeguard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRejectsOversizedSubmission(t *testing.T) {
	s := NewSanitizer(10)
	err := s.Sanitize(strings.Repeat("a", 11), "python")
	assert.Error(t, err)
	var sanitizationErr *SanitizationError
	assert.ErrorAs(t, err, &sanitizationErr)
}

func TestSanitizePythonDenylist(t *testing.T) {
	s := NewSanitizer(1 << 20)

	assert.NoError(t, s.Sanitize("print('hello')", "python"))
	assert.Error(t, s.Sanitize("import subprocess\nsubprocess.run(['ls'])", "python"))
	assert.Error(t, s.Sanitize("import ctypes", "python"))
	assert.Error(t, s.Sanitize("from os import system\nsystem('ls')", "python"))
	assert.Error(t, s.Sanitize("eval('1+1')", "python"))
}

func TestSanitizeEcmaScriptDenylist(t *testing.T) {
	s := NewSanitizer(1 << 20)

	assert.NoError(t, s.Sanitize("console.log(1)", "ecmascript-variant-A"))
	assert.Error(t, s.Sanitize("require('child_process').exec('ls')", "ecmascript-variant-A"))
	assert.Error(t, s.Sanitize("new Function('return 1')()", "ecmascript-variant-B"))
}

func TestSanitizeShellDenylist(t *testing.T) {
	s := NewSanitizer(1 << 20)

	assert.NoError(t, s.Sanitize("echo hello > /workspace/out.txt", "shell"))
	assert.Error(t, s.Sanitize("rm -rf /", "shell"))
	assert.Error(t, s.Sanitize("dd if=/dev/zero of=/dev/sda", "shell"))
}

func TestSanitizeUnknownLanguagePassesThrough(t *testing.T) {
	s := NewSanitizer(1 << 20)
	assert.NoError(t, s.Sanitize("anything at all", "cobol"))
}
