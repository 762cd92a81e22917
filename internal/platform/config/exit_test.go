package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/fairdice/internal/platform/config"
)

// runSubprocess re-runs the named test with marker set and returns its output
// and exit code. os.Exit cannot be intercepted in-process.
func runSubprocess(t *testing.T, name, marker string) (string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^"+name+"$")
	cmd.Env = append(os.Environ(), marker+"=1")

	out, err := cmd.CombinedOutput()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	return string(out), exitErr.ExitCode()
}

func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	out, code := runSubprocess(t, "TestExitf_ExitsWithCode1", "TEST_EXITF_SUBPROCESS")
	if code != config.ExitError {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out, "fatal: something broke") {
		t.Fatalf("expected stderr to contain %q, got %q", "fatal: something broke", out)
	}
}

func TestExitUsagef_PrintsUsage(t *testing.T) {
	if os.Getenv("TEST_EXITUSAGE_SUBPROCESS") == "1" {
		config.ExitUsagef("Example: fairdice 1,2,3,4,5,6", "Error: %s", "too few dice")
		return
	}

	out, code := runSubprocess(t, "TestExitUsagef_PrintsUsage", "TEST_EXITUSAGE_SUBPROCESS")
	if code != config.ExitError {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out, "Error: too few dice\nExample: fairdice 1,2,3,4,5,6\n") {
		t.Fatalf("expected error then usage, got %q", out)
	}
}
