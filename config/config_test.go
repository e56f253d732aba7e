package config

import "testing"

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatalf("expected error for empty variable name")
	}
	if _, err := GetEnvVariable("CATCH_TEST_UNSET"); err == nil {
		t.Fatalf("expected error for unset variable")
	}

	t.Setenv("CATCH_TEST_SET", "value")
	got, err := GetEnvVariable("CATCH_TEST_SET")
	if err != nil || got != "value" {
		t.Fatalf("GetEnvVariable = %q, %v; want %q, nil", got, err, "value")
	}
}

func TestListenAddrDefault(t *testing.T) {
	t.Setenv("CATCH_ADDR", "")
	if got := ListenAddr(); got != ":8080" {
		t.Fatalf("default addr = %q, want :8080", got)
	}

	t.Setenv("CATCH_ADDR", ":9000")
	if got := ListenAddr(); got != ":9000" {
		t.Fatalf("addr = %q, want :9000", got)
	}
}

func TestMatchSecondsParsing(t *testing.T) {
	t.Setenv("CATCH_MATCH_SECONDS", "")
	if got := MatchSeconds(); got != 0 {
		t.Fatalf("unset match seconds = %v, want 0", got)
	}

	t.Setenv("CATCH_MATCH_SECONDS", "bogus")
	if got := MatchSeconds(); got != 0 {
		t.Fatalf("bad match seconds = %v, want 0", got)
	}

	t.Setenv("CATCH_MATCH_SECONDS", "60")
	if got := MatchSeconds(); got != 60 {
		t.Fatalf("match seconds = %v, want 60", got)
	}
}

func TestSeedParsing(t *testing.T) {
	t.Setenv("CATCH_SEED", "12345")
	if got := Seed(); got != 12345 {
		t.Fatalf("seed = %d, want 12345", got)
	}

	t.Setenv("CATCH_SEED", "not-a-number")
	if got := Seed(); got != 0 {
		t.Fatalf("bad seed = %d, want 0", got)
	}
}
