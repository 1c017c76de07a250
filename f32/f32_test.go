// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 1, Y: 2}
	p2 := Point{X: 2, Y: -3}

	if r := p.Add(p2); r != Pt(3, -1) {
		t.Errorf("sum mismatch: have %v, want (3,-1)", r)
	}
	if r := p.Sub(p2); r != Pt(-1, 5) {
		t.Errorf("difference mismatch: have %v, want (-1,5)", r)
	}
	if r := p2.Mul(-2); r != Pt(-4, 6) {
		t.Errorf("scaled point mismatch: have %v, want (-4,6)", r)
	}
	if r := p.Mul(0); r != Pt(0, 0) {
		t.Errorf("zero scale mismatch: have %v, want (0,0)", r)
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(1.5, -2).String(); s != "(1.50,-2.00)" {
		t.Errorf("string mismatch: have %q, want %q", s, "(1.50,-2.00)")
	}
}
