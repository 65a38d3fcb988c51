package service

import "testing"

func TestResolveAuth(t *testing.T) {
	cases := []struct {
		name       string
		systemName any
		password   any
		wantLive   bool
	}{
		{"both present", "Pentair: 00-11-22", "1234", true},
		{"missing both", nil, nil, false},
		{"missing password", "Pentair: 00-11-22", nil, false},
		{"missing system name", nil, "1234", false},
		{"empty strings", "", "", false},
		{"numeric system name", 42, "1234", false},
		{"boolean password", "Pentair: 00-11-22", true, false},
		{"object system name", map[string]any{"x": 1}, "1234", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mode := ResolveAuth(tc.systemName, tc.password)
			if mode.IsLive() != tc.wantLive {
				t.Fatalf("IsLive=%t, want %t", mode.IsLive(), tc.wantLive)
			}
		})
	}
}

func TestResolveAuth_CredentialsPassThrough(t *testing.T) {
	mode := ResolveAuth("Pentair: 00-11-22", "s3cret")
	if !mode.IsLive() {
		t.Fatalf("expected live mode")
	}
	creds := mode.Credentials()
	if creds.SystemName != "Pentair: 00-11-22" || creds.Password != "s3cret" {
		t.Fatalf("credentials mangled: %+v", creds)
	}
}
