// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetricPx(t *testing.T) {
	m := Metric{PxPerDp: 2}
	tests := []struct {
		v        Value
		span     int
		fallback int
		want     int
	}{
		{Dp(800), 3840, 0, 1600},
		{Dp(600), 2160, 0, 1200},
		{Px(1600), 3840, 0, 1600},
		{Px(99.5), 3840, 0, 100},
		{Percent(50), 3840, 0, 1920},
		{Percent(25), 2160, 0, 540},
		{Default(), 3840, 1120, 1120},
		{Value{}, 3840, 42, 42},
	}
	for _, test := range tests {
		if got := m.Px(test.v, test.span, test.fallback); got != test.want {
			t.Errorf("Px(%v, %d, %d) = %d, wanted %d", test.v, test.span, test.fallback, got, test.want)
		}
	}
}

func TestMetricDp(t *testing.T) {
	m := Metric{PxPerDp: 2}
	tests := []struct {
		v        Value
		span     float32
		fallback float32
		want     float32
	}{
		{Dp(100), 1920, 0, 100},
		{Px(200), 1920, 0, 100},
		{Percent(10), 1920, 0, 192},
		{Default(), 1920, 960, 960},
	}
	for _, test := range tests {
		if got := m.Dp(test.v, test.span, test.fallback); got != test.want {
			t.Errorf("Dp(%v, %g, %g) = %g, wanted %g", test.v, test.span, test.fallback, got, test.want)
		}
	}
}

func TestDefaultIsZero(t *testing.T) {
	if !(Value{}).IsDefault() {
		t.Error("zero Value is not Default")
	}
	if Dp(0).IsDefault() {
		t.Error("Dp(0) reports Default")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Px(10), "10px"},
		{Dp(2.5), "2.5dp"},
		{Percent(50), "50%"},
		{Default(), "0default"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("String(%#v) = %q, wanted %q", test.v, got, test.want)
		}
	}
}
