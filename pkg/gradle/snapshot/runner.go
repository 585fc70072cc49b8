package snapshot

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gradletree/gradletree/pkg/gradle"
)

//go:embed init.gradle
var initScript []byte

// TaskName is the snapshot task registered by the init script.
const TaskName = "gradletreeSnapshot"

// Runner invokes a build's own Gradle to produce a resolution snapshot.
type Runner struct {
	// Dir is the project root directory.
	Dir string

	// Gradle overrides executable discovery when non-empty. Otherwise the
	// project's wrapper is preferred over a PATH install.
	Gradle string

	// ExtraArgs are appended to the Gradle invocation, e.g. "--offline".
	ExtraArgs []string

	// Logger receives progress notes (optional).
	Logger func(string, ...any)
}

// Run executes the snapshot task and decodes its output.
//
// The init script and the output file live in a private temp directory that
// is removed before Run returns. Gradle's stderr is included in the returned
// error when the build fails.
func (r *Runner) Run(ctx context.Context) (*gradle.Project, error) {
	exe := r.Gradle
	if exe == "" {
		exe = FindGradle(r.Dir)
	}

	tmp, err := os.MkdirTemp("", "gradletree-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	initPath := filepath.Join(tmp, "init.gradle")
	if err := os.WriteFile(initPath, initScript, 0o600); err != nil {
		return nil, fmt.Errorf("write init script: %w", err)
	}
	outPath := filepath.Join(tmp, "snapshot-"+uuid.NewString()+".json")

	args := []string{"--init-script", initPath, "-PgradletreeOutput=" + outPath, TaskName, "--quiet"}
	args = append(args, r.ExtraArgs...)

	r.logf("running %s %v", exe, args)
	cmd := exec.CommandContext(ctx, exe, args...)
	cmd.Dir = r.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("gradle snapshot task failed: %w\n%s", err, stderr.String())
	}

	return Load(outPath)
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger(format, args...)
	}
}

// FindGradle locates the Gradle executable for a project directory.
// The project's own wrapper takes precedence so the build runs with the
// Gradle version it declares; a PATH install is the fallback.
func FindGradle(dir string) string {
	wrapper := filepath.Join(dir, "gradlew")
	if _, err := os.Stat(wrapper); err == nil {
		return wrapper
	}
	wrapperBat := filepath.Join(dir, "gradlew.bat")
	if _, err := os.Stat(wrapperBat); err == nil {
		return wrapperBat
	}
	if path, err := exec.LookPath("gradle"); err == nil {
		return path
	}
	return "gradle"
}
