package main

import (
	"testing"

	"backlightctl/internal/engine"
)

func TestResolveOp_DefaultIsGet(t *testing.T) {
	op, operand, err := resolveOp(false, false, false, "", "", "")
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if op != engine.OpGet || operand != 0 {
		t.Fatalf("op=%v operand=%d want get/0", op, operand)
	}
}

func TestResolveOp_SingleFlags(t *testing.T) {
	cases := []struct {
		name          string
		get, min, max bool
		set, inc, dec string
		wantOp        engine.Op
		wantOperand   uint32
	}{
		{name: "get", get: true, wantOp: engine.OpGet},
		{name: "min", min: true, wantOp: engine.OpMin},
		{name: "max", max: true, wantOp: engine.OpMax},
		{name: "set", set: "128", wantOp: engine.OpSet, wantOperand: 128},
		{name: "inc", inc: "10", wantOp: engine.OpInc, wantOperand: 10},
		{name: "dec", dec: "10", wantOp: engine.OpDec, wantOperand: 10},
		{name: "set zero", set: "0", wantOp: engine.OpSet, wantOperand: 0},
		{name: "huge operand", inc: "4000000000", wantOp: engine.OpInc, wantOperand: 4_000_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, operand, err := resolveOp(tc.get, tc.min, tc.max, tc.set, tc.inc, tc.dec)
			if err != nil {
				t.Fatalf("err=%v", err)
			}
			if op != tc.wantOp || operand != tc.wantOperand {
				t.Fatalf("op=%v operand=%d want %v/%d", op, operand, tc.wantOp, tc.wantOperand)
			}
		})
	}
}

func TestResolveOp_MutuallyExclusive(t *testing.T) {
	if _, _, err := resolveOp(true, false, false, "5", "", ""); err == nil {
		t.Fatalf("expected error for -get with -set")
	}
	if _, _, err := resolveOp(false, true, true, "", "", ""); err == nil {
		t.Fatalf("expected error for -min with -max")
	}
	if _, _, err := resolveOp(false, false, false, "", "1", "1"); err == nil {
		t.Fatalf("expected error for -inc with -dec")
	}
}

func TestResolveOp_BadNumbers(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "4294967296", "1.5"} {
		if _, _, err := resolveOp(false, false, false, raw, "", ""); err == nil {
			t.Fatalf("expected error for -set %q", raw)
		}
	}
}
