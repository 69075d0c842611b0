package engine

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"xcodeengine/internal/session"
)

// snapshotFiles walks dir and returns the set of absolute file paths
// present, restricted to regular files (directories themselves are not
// tracked as baseline/generated entries).
func snapshotFiles(dir string) (map[string]struct{}, error) {
	files := make(map[string]struct{})
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		files[path] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engine: snapshot workspace %s: %w", dir, err)
	}
	return files, nil
}

// diffGenerated returns paths present in after but not in before.
func diffGenerated(before, after map[string]struct{}) map[string]struct{} {
	generated := make(map[string]struct{})
	for path := range after {
		if _, existed := before[path]; !existed {
			generated[path] = struct{}{}
		}
	}
	return generated
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListWorkspaceFiles returns the workspace's current files (relative to the
// workspace directory), optionally restricted to files ever generated by
// this session.
func (e *Engine) ListWorkspaceFiles(sessionID string, onlyGenerated bool) ([]string, error) {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	meta := activeMeta(sess)
	if meta == nil {
		return nil, fmt.Errorf("engine: session %s has no active container", sessionID)
	}

	if onlyGenerated {
		return relativePaths(meta.WorkspaceDir, sortedKeys(meta.SessionGeneratedFiles)), nil
	}

	files, err := snapshotFiles(meta.WorkspaceDir)
	if err != nil {
		return nil, err
	}
	return relativePaths(meta.WorkspaceDir, sortedKeys(files)), nil
}

func relativePaths(base string, absPaths []string) []string {
	out := make([]string, 0, len(absPaths))
	for _, p := range absPaths {
		rel, err := filepath.Rel(base, p)
		if err != nil {
			continue
		}
		out = append(out, rel)
	}
	return out
}

func activeMeta(sess *session.Session) *session.Meta {
	return sess.Current
}

// AddFileFromBase64 decodes b64 and writes it to relPath inside the
// session's workspace directory.
func (e *Engine) AddFileFromBase64(sessionID, relPath, b64 string) error {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("engine: decode base64: %w", err)
	}
	return e.writeWorkspaceFile(sessionID, relPath, data)
}

// CopyFileIntoWorkspace copies a host file into the session's workspace at
// destRelPath.
func (e *Engine) CopyFileIntoWorkspace(sessionID, localPath, destRelPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("engine: read local file %s: %w", localPath, err)
	}
	return e.writeWorkspaceFile(sessionID, destRelPath, data)
}

func (e *Engine) writeWorkspaceFile(sessionID, relPath string, data []byte) error {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return ErrSessionNotFound
	}
	meta := activeMeta(sess)
	if meta == nil {
		return fmt.Errorf("engine: session %s has no active container", sessionID)
	}

	target := filepath.Join(meta.WorkspaceDir, relPath)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("engine: ensure parent dir for %s: %w", relPath, err)
	}
	return os.WriteFile(target, data, 0644)
}

// ReadFileBase64 reads a workspace-relative file and returns it base64
// encoded.
func (e *Engine) ReadFileBase64(sessionID, relPath string) (string, error) {
	data, err := e.ReadFileBinary(sessionID, relPath)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ReadFileBinary reads a workspace-relative file's raw bytes.
func (e *Engine) ReadFileBinary(sessionID, relPath string) ([]byte, error) {
	sess, err := e.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	meta := activeMeta(sess)
	if meta == nil {
		return nil, fmt.Errorf("engine: session %s has no active container", sessionID)
	}
	return os.ReadFile(filepath.Join(meta.WorkspaceDir, relPath))
}

// pruneToGenerated deletes every file under dir not present in keep, then
// removes now-empty directories bottom-up, leaving the root directory
// itself intact.
func pruneToGenerated(dir string, keep map[string]struct{}) error {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("engine: walk workspace for prune %s: %w", dir, err)
	}

	for _, f := range files {
		if _, ok := keep[f]; ok {
			continue
		}
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("engine: prune %s: %w", f, err)
		}
	}

	return removeEmptyDirs(dir)
}

// removeEmptyDirs walks dir bottom-up and removes any directory that is
// empty, except dir itself.
func removeEmptyDirs(root string) error {
	var dirs []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dirs)))
	for _, d := range dirs {
		entries, err := os.ReadDir(d)
		if err != nil {
			continue
		}
		if len(entries) == 0 {
			_ = os.Remove(d)
		}
	}
	return nil
}
