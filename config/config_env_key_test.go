package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"emergencyGateway": map[string]any{
			"apiKey": "",
		},
		"sos": map[string]any{
			"baseRadiusMiles": 5,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "EMERGENCYGATEWAY_APIKEY", want: "emergencyGateway.apiKey"},
		{envKey: "SOS_BASERADIUSMILES", want: "sos.baseRadiusMiles"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplySOSDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplySOSDefaults()

	if cfg.SOS == nil {
		t.Fatal("expected SOS config to be populated")
	}
	if got := len(cfg.SOS.EscalationDelays); got != 3 {
		t.Fatalf("expected 3 escalation delays, got %d", got)
	}
	if cfg.SOS.BaseRadiusMiles != 5 {
		t.Fatalf("expected base radius 5, got %f", cfg.SOS.BaseRadiusMiles)
	}
	if cfg.SOS.InitialResponderCount != 5 {
		t.Fatalf("expected initial responder count 5, got %d", cfg.SOS.InitialResponderCount)
	}
}
