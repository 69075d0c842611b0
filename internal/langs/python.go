package langs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// pythonPlugin runs snippets with whichever python interpreter is available
// in the image, installing from a requirements.txt when dependencies were
// declared.
type pythonPlugin struct{}

func newPython() Plugin { return pythonPlugin{} }

func (pythonPlugin) Name() string           { return "python" }
func (pythonPlugin) DefaultImage() string   { return "python:3.9-slim" }
func (pythonPlugin) InlineFilename() string { return "code.py" }

func (pythonPlugin) Materialize(dir string, opts MaterializeOptions) error {
	if err := os.WriteFile(filepath.Join(dir, "code.py"), []byte(opts.Code), 0644); err != nil {
		return err
	}
	if len(opts.Dependencies) == 0 {
		return nil
	}
	body := strings.Join(opts.Dependencies, "\n") + "\n"
	return os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte(body), 0644)
}

// pythonInterpreter resolves python3 first, falling back to python, at
// container-exec time since availability isn't known until the image runs.
const pythonInterpreter = `PY=$(command -v python3 || command -v python); exec "$PY" -u`

func (pythonPlugin) InlineCommand(depsInstalled bool) []string {
	return []string{"sh", "-c", pythonInterpreter + " code.py"}
}

func (pythonPlugin) RunAppCommand(entryFile string, depsInstalled bool) []string {
	return []string{"sh", "-c", pythonInterpreter + " " + shellQuote(entryFile)}
}

func (pythonPlugin) HasInstaller() bool { return true }

func (pythonPlugin) InstallDependencies(ctx context.Context, exec Execer, containerID, workdir string, deps []string) (InstallResult, error) {
	if len(deps) == 0 {
		return InstallResult{}, nil
	}
	stdout, stderr, code, err := exec.Exec(ctx, containerID,
		[]string{"sh", "-c", "PY=$(command -v python3 || command -v python); \"$PY\" -m pip install --no-cache-dir -r requirements.txt"},
		workdir)
	return InstallResult{Stdout: stdout, Stderr: stderr, ExitCode: code}, err
}

// shellQuote wraps a path in single quotes, escaping embedded single quotes,
// for safe interpolation into a generated `sh -c` command.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
