package version

import "testing"

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version {
		t.Fatalf("expected version %q, got %q", Version, info.Version)
	}
}

func TestGetShortCommit(t *testing.T) {
	orig := GitCommit
	defer func() { GitCommit = orig }()

	GitCommit = "abcdef1234567890"
	if got := GetShortCommit(); got != "abcdef1" {
		t.Fatalf("expected abcdef1, got %s", got)
	}

	GitCommit = "abc"
	if got := GetShortCommit(); got != "abc" {
		t.Fatalf("expected abc, got %s", got)
	}
}
