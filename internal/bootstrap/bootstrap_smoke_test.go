package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	content := fmt.Sprintf(`
server:
  ip: "127.0.0.1"
  port: 8090
log:
  level: info
  dir: %q
  file: test.log
database:
  path: %q
auth:
  provider: credentials
  secret: smoke-test-secret
  session_ttl: 1h
roster:
  api_url: "http://127.0.0.1:1/baseball"
  timeout: 5s
  cache:
    driver: memory
    ttl: 1h
scout:
  provider: static
`, filepath.Join(tmp, "logs"), filepath.Join(tmp, "smoke.db"))

	path := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestInitGraphOrder(t *testing.T) {
	steps := InitGraph()
	want := []string{
		"config:load",
		"logging:init",
		"storage:open-database",
		"auth:init-provider",
		"roster:init-service",
		"scout:init-provider",
	}
	if len(steps) != len(want) {
		t.Fatalf("unexpected step count: got %d want %d", len(steps), len(want))
	}
	for i, step := range steps {
		if step.ID != want[i] {
			t.Fatalf("step %d mismatch: got %s want %s", i, step.ID, want[i])
		}
	}
}

func TestExecuteInitGraph(t *testing.T) {
	state := &appState{configPath: writeTestConfig(t)}
	if err := executeInitSteps(context.Background(), InitGraph(), state); err != nil {
		t.Fatalf("executeInitSteps failed: %v", err)
	}
	defer state.logger.Close()
	defer state.rosterCache.Close(context.Background())

	if state.config == nil {
		t.Fatal("config is nil after init")
	}
	if state.authProvider == nil {
		t.Fatal("auth provider is nil after init")
	}
	if state.tokenIssuer == nil {
		t.Fatal("token issuer is nil after init")
	}
	if state.rosterService == nil {
		t.Fatal("roster service is nil after init")
	}
	if state.scoutProvider == nil {
		t.Fatal("scout provider is nil after init")
	}
}

func TestExecuteInitStepsRejectsUnsatisfiedDependency(t *testing.T) {
	steps := []initStep{
		{
			ID:        "b",
			DependsOn: []string{"a"},
			Execute:   func(context.Context, *appState) error { return nil },
		},
	}
	if err := executeInitSteps(context.Background(), steps, &appState{}); err == nil {
		t.Fatal("expected dependency error")
	}
}
