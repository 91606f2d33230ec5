package llm

import "testing"

func TestIsSandboxKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"test-key-123", true},
		{"TEST-KEY", true},
		{"demo", true},
		{"  Demo-abc  ", true},
		{"sk-ant-real-key", false},
		{"", false},
		{"latest-key", false},
	}
	for _, tt := range tests {
		if got := IsSandboxKey(tt.key); got != tt.want {
			t.Errorf("IsSandboxKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestConfigFromEnvSandboxKeyForcesOffline(t *testing.T) {
	t.Setenv("LINGUO_LLM_PROVIDER", "anthropic")
	t.Setenv("LINGUO_ANTHROPIC_API_KEY", "demo-credential")

	cfg := ConfigFromEnv()
	if !cfg.Offline {
		t.Error("sandbox credential did not force offline mode")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on offline config = %v, want nil", err)
	}
}

func TestConfigFromEnvRealKeyStaysOnline(t *testing.T) {
	t.Setenv("LINGUO_LLM_PROVIDER", "anthropic")
	t.Setenv("LINGUO_ANTHROPIC_API_KEY", "sk-ant-abc123")
	t.Setenv("LINGUO_OFFLINE", "")

	cfg := ConfigFromEnv()
	if cfg.Offline {
		t.Error("real credential flipped offline mode")
	}
}

func TestConfigFromEnvExplicitOffline(t *testing.T) {
	t.Setenv("LINGUO_OFFLINE", "true")

	cfg := ConfigFromEnv()
	if !cfg.Offline {
		t.Error("LINGUO_OFFLINE=true not honored")
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted missing API key")
	}

	cfg.Provider = "nonsense"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted unknown provider")
	}
}
