package env

import "testing"

func TestGetFallsBackWhenUnset(t *testing.T) {
	t.Setenv("FREIGHTDESK_LOG_FORMAT", "")
	if got := Get("FREIGHTDESK_LOG_FORMAT", "json"); got != "json" {
		t.Fatalf("expected fallback got %q", got)
	}
	t.Setenv("FREIGHTDESK_LOG_FORMAT", "console")
	if got := Get("FREIGHTDESK_LOG_FORMAT", "json"); got != "console" {
		t.Fatalf("expected console got %q", got)
	}
}
