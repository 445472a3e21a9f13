package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
mqtt:
  broker:
    host: "broker.lan"
    port: 8883
    tls: true
    client_id: "bench-console"
  auth:
    username: "sensor"
  reconnect:
    initial_delay: 2
    max_delay: 30
logging:
  level: debug
  format: text
  output: stderr
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "broker.lan" {
		t.Errorf("Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "broker.lan")
	}
	if cfg.MQTT.Broker.Port != 8883 {
		t.Errorf("Broker.Port = %d, want 8883", cfg.MQTT.Broker.Port)
	}
	if !cfg.MQTT.Broker.TLS {
		t.Error("Broker.TLS = false, want true")
	}
	if cfg.MQTT.Auth.Username != "sensor" {
		t.Errorf("Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "sensor")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("mqtt: [not: a: mapping"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() expected error for invalid YAML")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	// A file that sets nothing should produce the full default config.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "localhost" {
		t.Errorf("Broker.Host = %q, want default %q", cfg.MQTT.Broker.Host, "localhost")
	}
	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("Broker.Port = %d, want default 1883", cfg.MQTT.Broker.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SENSORWATCH_MQTT_HOST", "env-broker")
	t.Setenv("SENSORWATCH_MQTT_USERNAME", "env-user")
	t.Setenv("SENSORWATCH_MQTT_PASSWORD", "env-pass")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := "mqtt:\n  broker:\n    host: file-broker\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "env-broker" {
		t.Errorf("Broker.Host = %q, want env override %q", cfg.MQTT.Broker.Host, "env-broker")
	}
	if cfg.MQTT.Auth.Username != "env-user" {
		t.Errorf("Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "env-user")
	}
	if cfg.MQTT.Auth.Password != "env-pass" {
		t.Errorf("Auth.Password = %q, want %q", cfg.MQTT.Auth.Password, "env-pass")
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty host",
			mutate:  func(c *Config) { c.MQTT.Broker.Host = "" },
			wantErr: true,
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.MQTT.Broker.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.MQTT.Broker.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "empty client id",
			mutate:  func(c *Config) { c.MQTT.Broker.ClientID = "" },
			wantErr: true,
		},
		{
			name:    "negative reconnect delay",
			mutate:  func(c *Config) { c.MQTT.Reconnect.InitialDelay = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
