package service

import "poolbridge"

// AuthMode is the per-request routing decision: run a command against a live
// gateway with credentials, or against the in-memory demo backend. Resolved
// once per request and passed explicitly through the call chain.
type AuthMode struct {
	live  bool
	creds poolbridge.Credentials
}

// Live builds an AuthMode carrying gateway credentials.
func Live(creds poolbridge.Credentials) AuthMode {
	return AuthMode{live: true, creds: creds}
}

// Demo builds the credential-less demo mode.
func Demo() AuthMode {
	return AuthMode{}
}

func (m AuthMode) IsLive() bool {
	return m.live
}

func (m AuthMode) Credentials() poolbridge.Credentials {
	return m.creds
}

// ResolveAuth inspects raw credential fields from a request body and decides
// the mode. Absent, empty, or malformed (non-string) fields resolve to demo
// mode rather than an error: missing credentials are a routing decision, not
// a validation failure. The leniency toward malformed fields is deliberate —
// the UI sends untyped form values and a wrongly-typed credential should fall
// back to the demo dataset instead of breaking the page.
func ResolveAuth(systemName, password any) AuthMode {
	name, ok := systemName.(string)
	if !ok || name == "" {
		return Demo()
	}
	pass, ok := password.(string)
	if !ok || pass == "" {
		return Demo()
	}
	return Live(poolbridge.Credentials{SystemName: name, Password: pass})
}
