package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"auth": map[string]any{
			"minPasswordLength": 6,
		},
		"smtp": map[string]any{
			"fromAddress": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MAXOPENCONNS", want: "postgres.maxOpenConns"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "AUTH_MINPASSWORDLENGTH", want: "auth.minPasswordLength"},
		{envKey: "SMTP_FROMADDRESS", want: "smtp.fromAddress"},
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
