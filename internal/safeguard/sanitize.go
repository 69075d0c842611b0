// Package safeguard is the ambient pre-execution input validation layer
// sitting in front of the engine: a best-effort static regex scan and a
// per-caller rate limiter. Neither is part of the orchestration core. The
// façade runs every submission through the Sanitizer; the RateLimiter is not
// wired into the façade. A caller that calls the engine directly skips both.
package safeguard

import (
	"fmt"
	"regexp"
)

// SanitizationError is returned when a code submission fails a static check.
type SanitizationError struct {
	Message string
	Details string
}

func (e *SanitizationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

// Sanitizer runs a language-aware regex scan over a code submission before
// it ever reaches a container.
type Sanitizer struct {
	maxCodeLength int
}

// NewSanitizer returns a Sanitizer enforcing maxCodeLength bytes per
// submission.
func NewSanitizer(maxCodeLength int) *Sanitizer {
	return &Sanitizer{maxCodeLength: maxCodeLength}
}

// Sanitize rejects submissions that are too large or match a
// language-specific denylist of clearly hostile patterns (escaping the
// sandbox, not exercising the code the caller asked to run).
func (s *Sanitizer) Sanitize(code, language string) error {
	if len(code) > s.maxCodeLength {
		return &SanitizationError{
			Message: "code length exceeds maximum limit",
			Details: fmt.Sprintf("max length allowed is %d bytes", s.maxCodeLength),
		}
	}

	var patterns []string
	switch language {
	case "python":
		patterns = pythonDenylist
	case "ecmascript-variant-A", "ecmascript-variant-B":
		patterns = ecmaScriptDenylist
	case "shell":
		patterns = shellDenylist
	default:
		return nil
	}

	if matched, err := matchAny(patterns, code); err != nil {
		return fmt.Errorf("safeguard: evaluate patterns: %w", err)
	} else if matched {
		return &SanitizationError{
			Message: fmt.Sprintf("prohibited %s pattern detected", language),
			Details: "submission matches a denylisted escape-attempt pattern",
		}
	}

	return nil
}

// pythonDenylist blocks the modules most commonly used to break out of a
// sandboxed interpreter: process spawning, dynamic import, and unrestricted
// eval/exec.
var pythonDenylist = []string{
	`(?i)import\s+subprocess`,
	`(?i)import\s+ctypes`,
	`from\s+os\s+import\s+(system|popen|exec[lv]\w*|spawn\w*)`,
	`__import__\(['"]os['"]\)`,
	`\beval\(`,
	`\bexec\(`,
}

// ecmaScriptDenylist blocks the Node built-ins that shell out or reach
// outside the workspace, along with dynamic code evaluation.
var ecmaScriptDenylist = []string{
	`require\(\s*['"]child_process['"]\s*\)`,
	`require\(\s*['"]cluster['"]\s*\)`,
	`\bnew Function\(`,
	`\beval\(`,
}

// shellDenylist blocks destructive filesystem operations outside the
// workspace and common fork-bomb shapes; it does not block anything scoped
// to /workspace, since the sandbox's own filesystem is fair game.
var shellDenylist = []string{
	`rm\s+-rf\s+/(?:\s|$)`,
	`:\(\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;\s*:`,
	`mkfs\.`,
	`dd\s+.*of=/dev/`,
}

func matchAny(patterns []string, code string) (bool, error) {
	for _, p := range patterns {
		matched, err := regexp.MatchString(p, code)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
