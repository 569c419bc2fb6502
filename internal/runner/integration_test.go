package runner_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// binaryPath builds the hyprconf binary and returns its path.
func binaryPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "hyprconf")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.CommandContext(t.Context(), "go", "build", "-o", bin, "../../cmd/hyprconf")
	cmd.Dir = filepath.Join(projectRoot(t), "internal", "runner")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func projectRoot(t *testing.T) string {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..")
}

// emptyConfig returns the path of an empty tool config so results do not
// depend on files in the working directory or the user's home.
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprconf.yml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("unexpected error: %v", err)
	}
	return exitErr.ExitCode()
}

func TestIntegrationGenerateRoundTrip(t *testing.T) {
	bin := binaryPath(t)
	cfg := emptyConfig(t)

	generated, err := exec.CommandContext(t.Context(), bin, "-config", cfg, "-generate").Output()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(generated), "general {\n") {
		t.Errorf("generate should start with the general section, got %q", string(generated)[:40])
	}

	cmd := exec.CommandContext(t.Context(), bin, "-config", cfg, "-check")
	cmd.Stdin = strings.NewReader(string(generated))
	if code := exitCode(t, cmd.Run()); code != 0 {
		t.Errorf("generated output should already be canonical, got exit %d", code)
	}
}

func TestIntegrationStdinFormat(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "-config", emptyConfig(t))
	cmd.Stdin = strings.NewReader("monitor=DP-1,1920x1080@144,0x0,1\n")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "\nmonitor = DP-1,1920x1080@144,0x0,1\n") {
		t.Errorf("stdin format: monitor line missing from output")
	}
}

func TestIntegrationCheckUnformatted(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "-config", emptyConfig(t), "-check")
	cmd.Stdin = strings.NewReader("general {\nborder_size=3\n}\n")
	if code := exitCode(t, cmd.Run()); code != 1 {
		t.Errorf("check unformatted: expected exit 1, got %d", code)
	}
}

func TestIntegrationDiff(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "-config", emptyConfig(t), "-diff")
	cmd.Stdin = strings.NewReader("general {\nborder_size=3\n}\n")
	out, err := cmd.CombinedOutput()
	if code := exitCode(t, err); code != 1 {
		t.Errorf("diff with changes: expected exit 1, got %d", code)
	}

	output := string(out)
	if !strings.Contains(output, "-border_size=3") {
		t.Errorf("diff missing old line: %s", output)
	}
	if !strings.Contains(output, "+    border_size = 3") {
		t.Errorf("diff missing new line: %s", output)
	}
}

func TestIntegrationWrite(t *testing.T) {
	bin := binaryPath(t)
	path := filepath.Join(t.TempDir(), "hyprland.conf")

	if err := os.WriteFile(path, []byte("general {\nborder_size=3\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := exec.CommandContext(t.Context(), bin, "-config", emptyConfig(t), "-w", path).CombinedOutput()
	if err != nil {
		t.Fatalf("write: %v\n%s", err, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "    border_size = 3\n") {
		t.Errorf("file after write is not canonical:\n%s", data)
	}
}

func TestIntegrationVersion(t *testing.T) {
	bin := binaryPath(t)

	out, err := exec.CommandContext(t.Context(), bin, "-version").Output()
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(string(out), "hyprconf ") {
		t.Errorf("version: got %q", string(out))
	}
}

func TestIntegrationHelp(t *testing.T) {
	bin := binaryPath(t)

	out, err := exec.CommandContext(t.Context(), bin, "-h").CombinedOutput()
	if err != nil {
		t.Fatalf("-h: %v\n%s", err, out)
	}
	help := string(out)
	for _, want := range []string{"Usage: hyprconf", "raise the log level to debug", "lower the log level to error"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestIntegrationMissingFile(t *testing.T) {
	bin := binaryPath(t)

	err := exec.CommandContext(t.Context(), bin, "-config", emptyConfig(t), "/nonexistent/hyprland.conf").Run()
	if code := exitCode(t, err); code != 2 {
		t.Errorf("missing file: expected exit 2, got %d", code)
	}
}

func TestIntegrationValidateSeverity(t *testing.T) {
	bin := binaryPath(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "custom.yml")
	cfg := "lint:\n  rules:\n    empty-submap: error\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.CommandContext(t.Context(), bin, "-config", configPath, "-validate")
	cmd.Stdin = strings.NewReader("submap = resize\nsubmap = reset\n")
	out, err := cmd.CombinedOutput()
	if code := exitCode(t, err); code != 1 {
		t.Errorf("validate: expected exit 1, got %d", code)
	}
	if !strings.Contains(string(out), `error: submap "resize" has no keybinds (empty-submap)`) {
		t.Errorf("validate output: %s", out)
	}
}

func TestIntegrationDumpYAML(t *testing.T) {
	bin := binaryPath(t)

	cmd := exec.CommandContext(t.Context(), bin, "-config", emptyConfig(t), "-dump", "yaml")
	cmd.Stdin = strings.NewReader("$mainMod = SUPER\n")
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(string(out), "mainMod: SUPER") {
		t.Errorf("dump missing variable:\n%s", out)
	}
}
