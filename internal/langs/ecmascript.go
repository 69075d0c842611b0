package langs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// ecmaScriptPlain is the ecmascript-variant-A plugin: plain JavaScript run
// directly by node, with npm install when a manifest is present.
type ecmaScriptPlain struct{}

func newEcmaScriptPlain() Plugin { return ecmaScriptPlain{} }

func (ecmaScriptPlain) Name() string           { return "ecmascript-variant-A" }
func (ecmaScriptPlain) DefaultImage() string   { return "node:18-alpine" }
func (ecmaScriptPlain) InlineFilename() string { return "code.js" }

func (ecmaScriptPlain) Materialize(dir string, opts MaterializeOptions) error {
	if err := os.WriteFile(filepath.Join(dir, "code.js"), []byte(opts.Code), 0644); err != nil {
		return err
	}
	return writePackageManifest(dir, opts.Dependencies)
}

func (ecmaScriptPlain) InlineCommand(depsInstalled bool) []string {
	return []string{"node", "code.js"}
}

func (ecmaScriptPlain) RunAppCommand(entryFile string, depsInstalled bool) []string {
	return []string{"node", entryFile}
}

func (ecmaScriptPlain) HasInstaller() bool { return true }

func (ecmaScriptPlain) InstallDependencies(ctx context.Context, exec Execer, containerID, workdir string, deps []string) (InstallResult, error) {
	return npmInstall(ctx, exec, containerID, workdir, deps)
}

// ecmaScriptTyped is the ecmascript-variant-B plugin: TypeScript run through
// a typed-runtime launcher (ts-node), with the same npm-based dependency
// install as plain JavaScript.
type ecmaScriptTyped struct{}

func newEcmaScriptTyped() Plugin { return ecmaScriptTyped{} }

func (ecmaScriptTyped) Name() string           { return "ecmascript-variant-B" }
func (ecmaScriptTyped) DefaultImage() string   { return "node:18-alpine" }
func (ecmaScriptTyped) InlineFilename() string { return "code.ts" }

const defaultTSConfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "commonjs",
    "strict": false,
    "esModuleInterop": true,
    "skipLibCheck": true
  }
}
`

func (ecmaScriptTyped) Materialize(dir string, opts MaterializeOptions) error {
	if err := os.WriteFile(filepath.Join(dir, "code.ts"), []byte(opts.Code), 0644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(defaultTSConfig), 0644); err != nil {
		return err
	}
	return writePackageManifest(dir, opts.Dependencies)
}

func (ecmaScriptTyped) InlineCommand(depsInstalled bool) []string {
	return []string{"npx", "--yes", "ts-node", "code.ts"}
}

func (ecmaScriptTyped) RunAppCommand(entryFile string, depsInstalled bool) []string {
	return []string{"npx", "--yes", "ts-node", entryFile}
}

func (ecmaScriptTyped) HasInstaller() bool { return true }

func (ecmaScriptTyped) InstallDependencies(ctx context.Context, exec Execer, containerID, workdir string, deps []string) (InstallResult, error) {
	return npmInstall(ctx, exec, containerID, workdir, deps)
}

// writePackageManifest writes a minimal package.json enumerating the
// declared dependencies, each at its "name@version" pin or at "*" (latest)
// when unpinned, when any were declared. An empty
// dependency list means no manifest is written, and no install is required.
func writePackageManifest(dir string, deps []string) error {
	if len(deps) == 0 {
		return nil
	}
	depMap := make(map[string]string, len(deps))
	for _, d := range deps {
		name, version := splitDependencySpec(d)
		depMap[name] = version
	}
	manifest := map[string]any{
		"name":         "sandbox-run",
		"version":      "1.0.0",
		"private":      true,
		"dependencies": depMap,
	}
	body, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "package.json"), body, 0644)
}

// splitDependencySpec splits a "name@version" dependency token into its
// parts, defaulting the version to "*" when unpinned.
func splitDependencySpec(spec string) (name, version string) {
	if idx := strings.LastIndex(spec, "@"); idx > 0 {
		return spec[:idx], spec[idx+1:]
	}
	return spec, "*"
}

func npmInstall(ctx context.Context, exec Execer, containerID, workdir string, deps []string) (InstallResult, error) {
	if len(deps) == 0 {
		return InstallResult{}, nil
	}
	stdout, stderr, code, err := exec.Exec(ctx, containerID, []string{"npm", "install", "--no-audit", "--no-fund"}, workdir)
	return InstallResult{Stdout: stdout, Stderr: stderr, ExitCode: code}, err
}
