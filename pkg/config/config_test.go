package config

import "testing"

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		`"abc123"`:            "abc123",
		"  token  ":           "token",
		"undefined":           "",
		"null":                "",
		"your_key_goes_here":  "",
		"your-project-id.xyz": "",
		"":                    "",
	}
	for in, want := range cases {
		if got := sanitize(in); got != want {
			t.Fatalf("sanitize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestConfiguredPredicates(t *testing.T) {
	c := &Config{}
	if c.Configured() {
		t.Fatalf("expected unconfigured when everything is empty")
	}

	c = &Config{Path: "/tmp/habitx"}
	if !c.Configured() || c.Remote() {
		t.Fatalf("expected local-only configuration")
	}

	c = &Config{RemoteURL: "https://x.example", RemoteKey: "anon"}
	if !c.Configured() || !c.Remote() {
		t.Fatalf("expected remote configuration")
	}

	c = &Config{RemoteURL: "https://x.example"}
	if c.Remote() {
		t.Fatalf("expected remote to require both url and key")
	}
}

func TestDiagnosticsOrder(t *testing.T) {
	c := &Config{GeminiAPIKey: "k", Path: "/tmp/habitx"}
	diags := c.Diagnostics()
	if len(diags) != 4 {
		t.Fatalf("expected 4 diagnostics, got %d", len(diags))
	}
	if !diags[0].OK || diags[0].Name != "HABITX_GEMINI_API_KEY" {
		t.Fatalf("unexpected first diagnostic: %+v", diags[0])
	}
	if diags[1].OK || diags[2].OK {
		t.Fatalf("expected missing remote settings, got %+v", diags[1:3])
	}
	if !diags[3].OK {
		t.Fatalf("expected path detected, got %+v", diags[3])
	}
}
