// Package facade is the thin NATS-facing collaborator sitting in front of
// the engine: request/response marshaling and sanitization.
// It mirrors the teacher's service+natshandler split, generalized from a
// single fixed-pool compile call to the full session/placement-aware
// engine.
package facade

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	compilergrpc "github.com/lijuuu/GlobalProtoXcode/Compiler"

	"xcodeengine/internal/engine"
	"xcodeengine/internal/safeguard"
	"xcodeengine/internal/session"
)

var (
	ErrInvalidRequest = errors.New("facade: invalid request parameters")
	ErrCodeTooLong    = errors.New("facade: code exceeds maximum length")
)

const maxCodeLength = 64 * 1024

// Service adapts transport-level requests onto the engine, applying
// sanitization ahead of every submission.
type Service struct {
	engine    *engine.Engine
	sanitizer *safeguard.Sanitizer
}

// NewService builds a Service around an already-constructed engine.
func NewService(e *engine.Engine) *Service {
	return &Service{engine: e, sanitizer: safeguard.NewSanitizer(maxCodeLength)}
}

// --- legacy compile subject, wire-compatible with compilergrpc.CompileResponse ---

// LegacyCompileRequest mirrors the teacher's CompilerRequest: base64-encoded
// code plus a language name.
type LegacyCompileRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Compile decodes, sanitizes, and runs a single PER_EXECUTION snippet,
// returning the teacher's original wire type so existing subscribers on the
// legacy subject keep working unchanged.
func (s *Service) Compile(req LegacyCompileRequest) (*compilergrpc.CompileResponse, error) {
	start := time.Now()

	codeBytes, err := base64.StdEncoding.DecodeString(req.Code)
	if err != nil {
		return &compilergrpc.CompileResponse{
			Success:       false,
			Error:         err.Error(),
			StatusMessage: "failed to decode base64",
		}, nil
	}
	code := string(codeBytes)

	if err := s.sanitizer.Sanitize(code, req.Language); err != nil {
		return &compilergrpc.CompileResponse{
			Success:       false,
			Error:         err.Error(),
			StatusMessage: err.Error(),
		}, nil
	}

	sessionID, err := s.engine.CreateSession(session.Config{Strategy: session.PerExecution})
	if err != nil {
		return &compilergrpc.CompileResponse{Success: false, Error: err.Error(), StatusMessage: "failed to create session"}, nil
	}

	result, err := s.engine.ExecuteCode(context.Background(), sessionID, engine.ExecutionOptions{
		Language: req.Language,
		Code:     code,
	})
	if err != nil {
		return &compilergrpc.CompileResponse{
			Success:       false,
			Error:         err.Error(),
			StatusMessage: "failed to execute code",
		}, nil
	}

	output := result.Stdout
	if result.ExitCode != 0 {
		output += result.Stderr
	}

	return &compilergrpc.CompileResponse{
		Success:       result.ExitCode == 0,
		Output:        output,
		ExecutionTime: time.Since(start).String(),
		StatusMessage: "success",
	}, nil
}

// --- new sandbox.execute.request subject, full session/placement surface ---

// SandboxExecuteRequest is the new subject's JSON request: a superset of
// the legacy request exposing session placement, dependencies, and
// resource overrides.
type SandboxExecuteRequest struct {
	SessionID        string   `json:"sessionId,omitempty"`
	Strategy         string   `json:"strategy,omitempty"`
	Language         string   `json:"language"`
	Code             string   `json:"code"`
	Dependencies     []string `json:"dependencies,omitempty"`
	MemoryLimit      *string  `json:"memoryLimit,omitempty"`
	CPULimit         *float64 `json:"cpuLimit,omitempty"`
	WorkspaceSharing string   `json:"workspaceSharing,omitempty"`
	TimeoutSeconds   int      `json:"timeoutSeconds,omitempty"`
}

// SandboxExecuteResponse is the new subject's JSON response.
type SandboxExecuteResponse struct {
	Success               bool     `json:"success"`
	Error                 string   `json:"error,omitempty"`
	Stdout                string   `json:"stdout"`
	Stderr                string   `json:"stderr"`
	DependencyStdout      string   `json:"dependencyStdout,omitempty"`
	DependencyStderr      string   `json:"dependencyStderr,omitempty"`
	ExitCode              int      `json:"exitCode"`
	ExecutionTimeMS       int64    `json:"executionTimeMs"`
	SessionID             string   `json:"sessionId"`
	GeneratedFiles        []string `json:"generatedFiles,omitempty"`
	SessionGeneratedFiles []string `json:"sessionGeneratedFiles,omitempty"`
}

// ExecuteSandbox handles the new subject's richer request shape, creating a
// session on the caller's behalf when SessionID is empty.
func (s *Service) ExecuteSandbox(req SandboxExecuteRequest) SandboxExecuteResponse {
	if err := s.sanitizer.Sanitize(req.Code, req.Language); err != nil {
		return SandboxExecuteResponse{Success: false, Error: err.Error()}
	}

	sessionID := req.SessionID
	if sessionID == "" {
		strategy := session.PlacementStrategy(req.Strategy)
		if strategy == "" {
			strategy = session.PerExecution
		}
		id, err := s.engine.CreateSession(session.Config{Strategy: strategy})
		if err != nil {
			return SandboxExecuteResponse{Success: false, Error: err.Error()}
		}
		sessionID = id
	}

	opts := engine.ExecutionOptions{
		Language:         req.Language,
		Code:             req.Code,
		Dependencies:     req.Dependencies,
		CPULimit:         req.CPULimit,
		MemoryLimit:      req.MemoryLimit,
		WorkspaceSharing: session.SharingMode(req.WorkspaceSharing),
	}
	if req.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	result, err := s.engine.ExecuteCode(context.Background(), sessionID, opts)
	if err != nil {
		return SandboxExecuteResponse{Success: false, Error: err.Error(), SessionID: sessionID}
	}

	return SandboxExecuteResponse{
		Success:               result.ExitCode == 0,
		Stdout:                result.Stdout,
		Stderr:                result.Stderr,
		DependencyStdout:      result.DependencyStdout,
		DependencyStderr:      result.DependencyStderr,
		ExitCode:              result.ExitCode,
		ExecutionTimeMS:       result.ExecutionTimeMS,
		SessionID:             sessionID,
		GeneratedFiles:        result.GeneratedFiles,
		SessionGeneratedFiles: result.SessionGeneratedFiles,
	}
}

// SandboxCleanupRequest is the JSON request for the cleanup subject.
type SandboxCleanupRequest struct {
	SessionID     string `json:"sessionId,omitempty"`
	All           bool   `json:"all,omitempty"`
	KeepGenerated bool   `json:"keepGenerated,omitempty"`
}

// SandboxCleanupResponse is the JSON response for the cleanup subject.
type SandboxCleanupResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Cleanup tears a single session or every known session down.
func (s *Service) Cleanup(req SandboxCleanupRequest) SandboxCleanupResponse {
	var err error
	if req.All || req.SessionID == "" {
		err = s.engine.Cleanup(context.Background(), req.KeepGenerated)
	} else {
		err = s.engine.CleanupSession(context.Background(), req.SessionID, req.KeepGenerated)
	}
	if err != nil {
		return SandboxCleanupResponse{Success: false, Error: err.Error()}
	}
	return SandboxCleanupResponse{Success: true}
}
