package testframe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"HandlesAddition", "Tests handles addition"},
		{"handles_empty_input", "Tests handles empty input"},
		{"TestCopyConstructor", "Tests Copy Constructor"},
		{"ShouldRejectNegative", "Should Reject Negative"},
		{"VerifyChecksum", "Verifies Checksum"},
		{"checks_bounds", "checks bounds"},
		{"EnsureOrdering", "Ensures Ordering"},
		{"ValidateInput", "Validates Input"},
		{"WhenQueueIsFull", "When Queue Is Full"},
	}
	for _, tt := range tests {
		tc := &TestCase{Name: tt.name}
		if got := Describe(tc); got != tt.want {
			t.Errorf("Describe(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDescribeKeepsDescribingWord(t *testing.T) {
	// A name already starting with a describing word but without
	// trailing text for the prefix rule keeps its readable form.
	tc := &TestCase{Name: "testing_edge_cases"}
	if got := Describe(tc); got != "testing edge cases" {
		t.Errorf("Describe = %q, want %q", got, "testing edge cases")
	}
}

func TestCoverage(t *testing.T) {
	tc := &TestCase{Assertions: []string{"EXPECT_EQ", "EXPECT_TRUE", "EXPECT_THROW"}}
	want := []string{
		"Covers equality comparison",
		"Covers boolean true condition",
		"Covers exception throwing behavior",
	}
	if diff := cmp.Diff(want, Coverage(tc)); diff != "" {
		t.Errorf("Coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverageDedupes(t *testing.T) {
	tc := &TestCase{Assertions: []string{"EXPECT_EQ", "ASSERT_EQ"}}
	got := Coverage(tc)
	if len(got) != 1 || got[0] != "Covers equality comparison" {
		t.Errorf("Coverage = %v, want one deduplicated point", got)
	}
}

func TestCoverageBounded(t *testing.T) {
	tc := &TestCase{Assertions: []string{
		"EXPECT_EQ", "EXPECT_NE", "EXPECT_TRUE", "EXPECT_FALSE",
		"EXPECT_THROW", "EXPECT_NO_THROW", "REQUIRE",
	}}
	if got := Coverage(tc); len(got) > maxCoveragePoints {
		t.Errorf("Coverage returned %d points, cap is %d", len(got), maxCoveragePoints)
	}
}

func TestCoverageCppUnit(t *testing.T) {
	tc := &TestCase{Assertions: []string{"CPPUNIT_ASSERT_EQUAL", "CPPUNIT_FAIL"}}
	want := []string{
		"Covers equality validation",
		"Covers explicit failure reporting",
	}
	if diff := cmp.Diff(want, Coverage(tc)); diff != "" {
		t.Errorf("Coverage mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverageEmpty(t *testing.T) {
	if got := Coverage(&TestCase{}); len(got) != 0 {
		t.Errorf("Coverage with no assertions = %v, want none", got)
	}
}
