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
		"stripe": map[string]any{
			"webhookSecret": "",
			"priceId":       "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"testRoutes": map[string]any{
			"enabled": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "STRIPE_PRICEID", want: "stripe.priceId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "TESTROUTES_ENABLED", want: "testRoutes.enabled"},
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
