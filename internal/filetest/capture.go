package filetest

import (
	"testing"

	"github.com/kylelemons/godebug/diff"
)

// AssertEqual compares got against want using
// github.com/kylelemons/godebug/diff for a readable mismatch report --
// for callers (like lang/host's end-to-end tests) that assert against a
// literal expected transcript rather than a testdata fixture.
func AssertEqual(t *testing.T, label, want, got string) {
	t.Helper()
	if patch := diff.Diff(want, got); patch != "" {
		t.Errorf("diff %s:\n%s\n", label, patch)
	}
}
