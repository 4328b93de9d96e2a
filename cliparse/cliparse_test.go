package cliparse

import "testing"

func TestDefaults(t *testing.T) {
	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}
	if cfg.DataDir != "databases" {
		t.Errorf("Expected default data dir 'databases', got %q", cfg.DataDir)
	}
	if cfg.NodesFile != "" {
		t.Errorf("Expected no default nodes file, got %q", cfg.NodesFile)
	}
}

func TestFlagsOverrideDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "/var/lib/luxmon", "-n", "fleet.yaml"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.DataDir != "/var/lib/luxmon" {
		t.Errorf("Expected data dir '/var/lib/luxmon', got %q", cfg.DataDir)
	}
	if cfg.NodesFile != "fleet.yaml" {
		t.Errorf("Expected nodes file 'fleet.yaml', got %q", cfg.NodesFile)
	}
}

func TestEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("NODES_FILE", "env.yaml")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000 from env, got %d", cfg.Port)
	}
	if cfg.DataDir != "/srv/data" {
		t.Errorf("Expected data dir '/srv/data' from env, got %q", cfg.DataDir)
	}
	if cfg.NodesFile != "env.yaml" {
		t.Errorf("Expected nodes file 'env.yaml' from env, got %q", cfg.NodesFile)
	}
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_DIR", "/srv/data")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "flagdir"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected flag port 8080 to win, got %d", cfg.Port)
	}
	if cfg.DataDir != "flagdir" {
		t.Errorf("Expected flag data dir to win, got %q", cfg.DataDir)
	}
}

func TestInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected an error for a non-numeric PORT")
	}
}

func TestUnknownFlag(t *testing.T) {
	if _, err := ParseFlags([]string{"-bogus"}); err == nil {
		t.Error("Expected an error for an unknown flag")
	}
}
