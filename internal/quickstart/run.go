package quickstart

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jlyonsmith/git-extra/internal/log"
)

// Cloner clones a repository into a target directory.
type Cloner interface {
	Clone(ctx context.Context, originURL, targetDir string) error
}

// Runner spawns a script as a child process with its working directory
// set to workDir, inheriting the parent's standard streams and
// environment, and reports the script's exit code.
type Runner interface {
	Execute(ctx context.Context, path, workDir string) (int, error)
}

var (
	// ErrCustomizerNotFound indicates the clone does not contain the
	// expected customizer script.
	ErrCustomizerNotFound = errors.New("customizer script not found")

	// ErrCustomizerNotExecutable indicates the customizer exists but
	// lacks executable permission.
	ErrCustomizerNotExecutable = errors.New("customizer script is not executable")
)

// ExitError carries a customizer's non-zero exit code so it can be
// propagated verbatim as the process exit code.
type ExitError struct {
	Path string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("customizer %q exited with code %d", e.Path, e.Code)
}

// Run executes a resolved quick-start request: clone, then run the
// customizer script inside the fresh clone.
//
// The customizer runs unsandboxed with the caller's full environment and
// permissions. That is the documented contract, not an oversight: the
// script is trusted user content that adapts the template into a new
// project, and it may legitimately install tools, rewrite files, or
// call the network. BE CAREFUL with shortcuts pointing at repositories
// you don't control.
func Run(ctx context.Context, req Request, cloner Cloner, runner Runner) error {
	l := log.FromContext(ctx)

	l.Printf("Cloning %s into %s\n", req.Origin, req.TargetDir)
	if err := cloner.Clone(ctx, req.Origin, req.TargetDir); err != nil {
		return fmt.Errorf("clone failed: %w", err)
	}

	scriptPath := filepath.Join(req.TargetDir, req.Customizer)
	info, err := os.Stat(scriptPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrCustomizerNotFound, scriptPath)
		}
		return fmt.Errorf("stat customizer %s: %w", scriptPath, err)
	}
	if info.Mode()&0111 == 0 {
		return fmt.Errorf("%w: %s", ErrCustomizerNotExecutable, scriptPath)
	}

	// The runner sets the working directory to the clone root, so the
	// script path must be absolute to not be looked up in PATH.
	absPath, err := filepath.Abs(scriptPath)
	if err != nil {
		return fmt.Errorf("resolve customizer path %s: %w", scriptPath, err)
	}

	l.Printf("Running customizer %s\n", req.Customizer)
	code, err := runner.Execute(ctx, absPath, req.TargetDir)
	if err != nil {
		return fmt.Errorf("run customizer %s: %w", scriptPath, err)
	}
	if code != 0 {
		return &ExitError{Path: scriptPath, Code: code}
	}
	return nil
}
