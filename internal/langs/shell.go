package langs

import (
	"context"
	"os"
	"path/filepath"
)

// shellPlugin runs POSIX shell scripts against alpine, interpreting
// dependencies as apk package names.
type shellPlugin struct{}

func newShell() Plugin { return shellPlugin{} }

func (shellPlugin) Name() string           { return "shell" }
func (shellPlugin) DefaultImage() string   { return "alpine:latest" }
func (shellPlugin) InlineFilename() string { return "code.sh" }

func (shellPlugin) Materialize(dir string, opts MaterializeOptions) error {
	return os.WriteFile(filepath.Join(dir, "code.sh"), []byte(opts.Code), 0755)
}

func (shellPlugin) InlineCommand(depsInstalled bool) []string {
	return []string{"sh", "code.sh"}
}

func (shellPlugin) RunAppCommand(entryFile string, depsInstalled bool) []string {
	return []string{"sh", entryFile}
}

func (shellPlugin) HasInstaller() bool { return true }

func (shellPlugin) InstallDependencies(ctx context.Context, exec Execer, containerID, workdir string, deps []string) (InstallResult, error) {
	if len(deps) == 0 {
		return InstallResult{}, nil
	}

	updateOut, updateErr, updateCode, err := exec.Exec(ctx, containerID, []string{"apk", "update"}, workdir)
	if err != nil || updateCode != 0 {
		return InstallResult{Stdout: updateOut, Stderr: updateErr, ExitCode: updateCode}, err
	}

	args := append([]string{"apk", "add", "--no-cache"}, deps...)
	addOut, addErr, addCode, err := exec.Exec(ctx, containerID, args, workdir)
	return InstallResult{
		Stdout:   updateOut + addOut,
		Stderr:   updateErr + addErr,
		ExitCode: addCode,
	}, err
}
