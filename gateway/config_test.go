package gateway

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// chdir moves the test into dir so LoadConfig sees dir's .env, if any.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "gateway.toml")
	writeFile(t, path, `
listen = ":25566"
instance_id = "i-0abc"
region = "eu-west-1"
max_players = 8

[transport]
max_packet_len = 4096
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Listen != ":25566" || cfg.InstanceID != "i-0abc" || cfg.Region != "eu-west-1" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.MaxPlayers != 8 {
		t.Errorf("max players: got %d, want 8", cfg.MaxPlayers)
	}
	if cfg.Transport.MaxPacketLen != 4096 {
		t.Errorf("max packet len: got %d, want 4096", cfg.Transport.MaxPacketLen)
	}

	// keys absent from the file keep their defaults
	def := DefaultConfig()
	if cfg.MOTD != def.MOTD || cfg.Transport.MaxDecompressedLen != def.Transport.MaxDecompressedLen {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "gateway.toml")
	writeFile(t, path, `instance_id = "i-file"`)
	writeFile(t, filepath.Join(dir, ".env"), "MCWIRE_MOTD=from dotenv\n")

	t.Setenv("MCWIRE_INSTANCE_ID", "i-env")
	t.Setenv("MCWIRE_STATUS_TIMEOUT", "7")
	// godotenv.Load does not replace variables that are already set
	t.Setenv("MCWIRE_MOTD", "")
	os.Unsetenv("MCWIRE_MOTD")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.InstanceID != "i-env" {
		t.Errorf("instance id: got %q, want i-env", cfg.InstanceID)
	}
	if cfg.StatusTimeout != 7 {
		t.Errorf("status timeout: got %d, want 7", cfg.StatusTimeout)
	}
	if cfg.MOTD != "from dotenv" {
		t.Errorf("motd: got %q, want %q", cfg.MOTD, "from dotenv")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if _, err := LoadConfig(""); !errors.Is(err, ErrMissingInstance) {
		t.Errorf("no instance: got %v, want ErrMissingInstance", err)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file: expected an error")
	}

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "max_players = \"many\"")
	if _, err := LoadConfig(bad); err == nil {
		t.Error("mistyped key: expected an error")
	}

	t.Setenv("MCWIRE_INSTANCE_ID", "i-0abc")
	t.Setenv("MCWIRE_MAX_PLAYERS", "lots")
	if _, err := LoadConfig(""); err == nil {
		t.Error("bad integer variable: expected an error")
	}
}
