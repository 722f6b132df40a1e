package csgx

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestScenarios captures the exact stdout of every numbered
// end-to-end scenario as a golden snapshot, so a future regression in
// canonical formatting or evaluation order shows up as a diff instead
// of a silent behavior change.
func TestScenarios(t *testing.T) {
	scenarios := []struct {
		name string
		src  string
	}{
		{"add_and_print", "1 2 add ="},
		{"def_and_invoke", "/inc { 1 add } def 5 inc ="},
		{"counttomark", "mark 1 2 3 counttomark ="},
		{"repeat_three_times", "3 { 7 = } repeat"},
		{"ifelse_true", "true { 1 = } { 2 = } ifelse"},
		{"ifelse_false", "false { 1 = } { 2 = } ifelse"},
	}
	for _, s := range scenarios {
		s := s
		t.Run(s.name, func(t *testing.T) {
			var out bytes.Buffer
			intp := NewInterpreter(&out)
			if err := intp.ExecuteString(s.src); err != nil {
				t.Fatal(err)
			}
			snaps.MatchSnapshot(t, s.name, out.String())
		})
	}
}

func TestScenarioRollOutput(t *testing.T) {
	var out bytes.Buffer
	intp := NewInterpreter(&out)
	if err := intp.ExecuteString("1 2 3 3 -1 roll pstack"); err != nil {
		t.Fatal(err)
	}
	snaps.MatchSnapshot(t, "roll_then_pstack", out.String())
}
