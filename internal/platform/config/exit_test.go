package config_test

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/crewportrait/internal/platform/config"
)

// os.Exit cannot be observed in process, so the test re-runs itself.
func TestExitf(t *testing.T) {
	if os.Getenv("CREWPORTRAIT_EXITF_CHILD") == "1" {
		config.Exitf("crew: %s", "description is required")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf$")
	cmd.Env = append(os.Environ(), "CREWPORTRAIT_EXITF_CHILD=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected an exit error, got %T: %v", err, err)
	}
	if code := exitErr.ExitCode(); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := string(out); !strings.Contains(got, "crew: description is required\n") {
		t.Fatalf("output = %q", got)
	}
}
