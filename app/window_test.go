// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/unit"
)

func TestPlacementCenteredHiDPI(t *testing.T) {
	a, _ := newTestAppOn(t, []Screen{testScreen2x()})
	w := mustWindow(t, a)
	want := image.Rect(1120, 480, 2720, 1680)
	if got := w.Frame(); got != want {
		t.Errorf("frame = %v, want %v", got, want)
	}
	if got := w.Scale(); got != 2 {
		t.Errorf("scale = %v, want 2", got)
	}
	if got := w.Surface().DrawableSize(); got != image.Pt(1600, 1200) {
		t.Errorf("drawable = %v, want 1600x1200", got)
	}
}

func TestPlacementSecondScreen(t *testing.T) {
	primary := Screen{Bounds: image.Rect(0, 0, 1920, 1080), Usable: image.Rect(0, 0, 1920, 1080), Scale: 1}
	second := Screen{Bounds: image.Rect(1920, 0, 3840, 1080), Usable: image.Rect(1920, 0, 3840, 1080), Scale: 2}
	a, _ := newTestAppOn(t, []Screen{primary, second})
	w := mustWindow(t, a,
		Position(unit.Dp(2000), unit.Dp(100)),
		Size(unit.Dp(400), unit.Dp(300)),
	)
	if got := w.Screen().Scale; got != 2 {
		t.Fatalf("screen scale = %v, want 2", got)
	}
	want := image.Rect(4000, 200, 4800, 800)
	if got := w.Frame(); got != want {
		t.Errorf("frame = %v, want %v", got, want)
	}
}

func TestPlacementPercent(t *testing.T) {
	a, _ := newTestAppOn(t, []Screen{testScreen2x()})
	w := mustWindow(t, a,
		Position(unit.Percent(25), unit.Percent(25)),
		Size(unit.Percent(50), unit.Percent(50)),
	)
	want := image.Rect(960, 540, 2880, 1620)
	if got := w.Frame(); got != want {
		t.Errorf("frame = %v, want %v", got, want)
	}
}

func TestPlacementNoScreens(t *testing.T) {
	h := NewHeadless()
	a := New(h)
	h.screens = nil
	if _, err := NewWindow(a); err != ErrNoScreens {
		t.Errorf("err = %v, want %v", err, ErrNoScreens)
	}
}

func TestWindowLifecycle(t *testing.T) {
	a, h := newTestApp(t)
	w := mustWindow(t, a, Title("one"))
	id := w.NativeHandle()
	if got := w.Stage(); got != StageCreated {
		t.Fatalf("stage = %v, want %v", got, StageCreated)
	}
	if w.Visible() {
		t.Error("visible before Show")
	}
	if info, _ := h.ViewInfo(id); info.Attached {
		t.Error("attached before Show")
	}

	var shown []bool
	destroyed := 0
	w.SetHandlers(Handlers{
		Lifecycle: LifecycleCallbacks{
			VisibilityChanged: func(v bool) { shown = append(shown, v) },
			Destroyed:         func() { destroyed++ },
		},
	})

	w.Show()
	if got := w.Stage(); got != StageShown {
		t.Fatalf("stage = %v, want %v", got, StageShown)
	}
	if !w.Visible() {
		t.Error("not visible after Show")
	}
	info, _ := h.ViewInfo(id)
	if !info.Attached || info.Title != "one" || info.Kind != NativeDecoration {
		t.Errorf("view after Show = %+v", info)
	}
	if got := h.KeyWindow(); got != id {
		t.Errorf("key window = %#x, want %#x", got, id)
	}

	w.SetTitle("two")
	if info, _ := h.ViewInfo(id); info.Title != "two" {
		t.Errorf("title = %q, want %q", info.Title, "two")
	}

	w.Hide()
	if got := w.Stage(); got != StageHidden {
		t.Errorf("stage = %v, want %v", got, StageHidden)
	}
	if w.Visible() {
		t.Error("visible after Hide")
	}
	w.Show()
	if got := w.Stage(); got != StageShown {
		t.Errorf("stage = %v, want %v", got, StageShown)
	}

	w.Close()
	if got := w.Stage(); got != StageClosed {
		t.Fatalf("stage = %v, want %v", got, StageClosed)
	}
	if destroyed != 1 {
		t.Errorf("destroyed %d times, want 1", destroyed)
	}
	if got := a.Windows().Len(); got != 0 {
		t.Errorf("registry len = %d, want 0", got)
	}
	if _, ok := h.ViewInfo(id); ok {
		t.Error("native view survived Close")
	}
	wantShown := []bool{true, false, true, false}
	if len(shown) != len(wantShown) {
		t.Fatalf("visibility changes = %v, want %v", shown, wantShown)
	}
	for i := range shown {
		if shown[i] != wantShown[i] {
			t.Fatalf("visibility changes = %v, want %v", shown, wantShown)
		}
	}

	// Closing again does nothing.
	w.Close()
	if destroyed != 1 {
		t.Errorf("second Close destroyed again")
	}
}

func TestWindowCloseVeto(t *testing.T) {
	a, _ := newTestApp(t)
	w := mustWindow(t, a)
	veto := true
	asked := 0
	w.SetHandlers(Handlers{
		Lifecycle: LifecycleCallbacks{
			CloseRequested: func() bool { asked++; return !veto },
		},
	})
	w.Show()
	w.Close()
	if asked != 1 {
		t.Fatalf("asked %d times, want 1", asked)
	}
	if got := w.Stage(); got != StageShown {
		t.Fatalf("vetoed close changed stage to %v", got)
	}
	if got := a.Windows().Len(); got != 1 {
		t.Fatalf("registry len = %d, want 1", got)
	}
	veto = false
	w.Close()
	if got := w.Stage(); got != StageClosed {
		t.Errorf("stage = %v, want %v", got, StageClosed)
	}
}

func TestPopupNeverKey(t *testing.T) {
	a, h := newTestApp(t)
	popup := mustWindow(t, a, Decoration(PopupDecoration))
	popup.Show()
	if got := h.KeyWindow(); got != 0 {
		t.Fatalf("popup became key on Show: %#x", got)
	}
	h.SendMouseDown(popup.NativeHandle(), 0, f32.Pt(5, 5), 0, 1)
	if got := h.KeyWindow(); got != 0 {
		t.Fatalf("popup became key on click: %#x", got)
	}

	normal := mustWindow(t, a)
	normal.Show()
	if got := h.KeyWindow(); got != normal.NativeHandle() {
		t.Fatalf("key window = %#x, want %#x", got, normal.NativeHandle())
	}
	popup.Raise()
	if got := h.KeyWindow(); got != normal.NativeHandle() {
		t.Errorf("raising popup stole key: %#x", got)
	}
	h.SendMouseDown(normal.NativeHandle(), 0, f32.Pt(5, 5), 0, 1)
	if got := h.KeyWindow(); got != normal.NativeHandle() {
		t.Errorf("key window = %#x, want %#x", got, normal.NativeHandle())
	}
}

func TestEmbeddedWindow(t *testing.T) {
	a, h := newTestApp(t)
	host := h.CreateHostView(image.Rect(0, 0, 800, 600), 2)
	w, err := NewEmbeddedWindow(a, host, Size(unit.Px(400), unit.Px(300)))
	if err != nil {
		t.Fatalf("NewEmbeddedWindow: %v", err)
	}
	if !w.Embedded() {
		t.Fatal("not embedded")
	}
	if got := w.Stage(); got != StageShown {
		t.Errorf("stage = %v, want %v", got, StageShown)
	}
	if !w.Visible() {
		t.Error("embedded window not visible at creation")
	}
	if got := w.Scale(); got != 2 {
		t.Errorf("scale = %v, want host scale 2", got)
	}
	if got := w.Surface().DrawableSize(); got != image.Pt(400, 300) {
		t.Errorf("drawable = %v, want 400x300", got)
	}

	// Occlusion reports are for standalone windows; the host owns
	// embedded visibility.
	h.SendOcclusion(w.NativeHandle(), false)
	if !w.Visible() {
		t.Error("occlusion toggled embedded visibility")
	}

	// Embedded teardown skips the close request round trip.
	w.SetHandlers(Handlers{
		Lifecycle: LifecycleCallbacks{
			CloseRequested: func() bool { return false },
		},
	})
	w.Close()
	if got := w.Stage(); got != StageClosed {
		t.Errorf("stage = %v, want %v", got, StageClosed)
	}
}

func TestEmbeddedWindowHostDensity(t *testing.T) {
	a, h := newTestApp(t)
	host := h.CreateHostView(image.Rect(0, 0, 800, 600), 2)
	w, err := NewEmbeddedWindow(a, host, Size(unit.Dp(400), unit.Dp(300)))
	if err != nil {
		t.Fatalf("NewEmbeddedWindow: %v", err)
	}
	// Density-dependent sizes follow the host view's scale, not the
	// primary screen's.
	if got := w.Frame().Size(); got != image.Pt(800, 600) {
		t.Errorf("frame = %v, want 800x600", got)
	}
	if got := w.Surface().DrawableSize(); got != image.Pt(800, 600) {
		t.Errorf("drawable = %v, want 800x600", got)
	}
}

func TestEmbeddedWindowClickRequestsKey(t *testing.T) {
	a, h := newTestApp(t)
	host := h.CreateHostView(image.Rect(0, 0, 800, 600), 2)
	w, err := NewEmbeddedWindow(a, host, Size(unit.Px(400), unit.Px(300)))
	if err != nil {
		t.Fatalf("NewEmbeddedWindow: %v", err)
	}
	if got := h.KeyWindow(); got != 0 {
		t.Fatalf("embedded window key before any click: %#x", got)
	}
	// A click on a hosted view re-derives focus like any other: the
	// view asks its window, the host's, to become key.
	h.SendMouseDown(w.NativeHandle(), 0, f32.Pt(5, 5), 0, 1)
	if got := h.KeyWindow(); got != w.NativeHandle() {
		t.Errorf("key window = %#x, want %#x", got, w.NativeHandle())
	}
}

func TestEmbeddedWindowNeedsParent(t *testing.T) {
	a, _ := newTestApp(t)
	if _, err := NewEmbeddedWindow(a, 0); err != ErrNoParent {
		t.Errorf("err = %v, want %v", err, ErrNoParent)
	}
	if _, err := NewEmbeddedWindow(a, 0x9999); err != ErrNoParent {
		t.Errorf("err for unknown parent = %v, want %v", err, ErrNoParent)
	}
}

func TestWindowMovedAcrossScreens(t *testing.T) {
	primary := Screen{Bounds: image.Rect(0, 0, 1920, 1080), Usable: image.Rect(0, 0, 1920, 1080), Scale: 1}
	second := Screen{Bounds: image.Rect(1920, 0, 3840, 1080), Usable: image.Rect(1920, 0, 3840, 1080), Scale: 2}
	a, h := newTestAppOn(t, []Screen{primary, second})
	w := mustWindow(t, a)
	w.Show()
	var moved []image.Point
	w.SetHandlers(Handlers{
		Lifecycle: LifecycleCallbacks{
			Moved: func(origin image.Point) { moved = append(moved, origin) },
		},
	})
	h.MoveWindow(w.NativeHandle(), image.Pt(4000, 200))
	if got := w.Frame().Min; got != image.Pt(4000, 200) {
		t.Errorf("origin = %v, want (4000,200)", got)
	}
	if len(moved) != 1 || moved[0] != image.Pt(4000, 200) {
		t.Errorf("moved callbacks = %v", moved)
	}
	if got := w.Screen().Scale; got != 2 {
		t.Errorf("screen scale after move = %v, want 2", got)
	}
}

func TestBackingScaleChanged(t *testing.T) {
	a, h := newTestApp(t)
	w := mustWindow(t, a, Size(unit.Px(800), unit.Px(600)))
	w.Show()
	var scales []float32
	w.SetHandlers(Handlers{
		Lifecycle: LifecycleCallbacks{
			ScaleChanged: func(s float32) { scales = append(scales, s) },
		},
	})
	h.SendBackingScale(w.NativeHandle(), 2)
	if got := w.Scale(); got != 2 {
		t.Fatalf("scale = %v, want 2", got)
	}
	if got := w.Frame().Size(); got != image.Pt(1600, 1200) {
		t.Errorf("frame size = %v, want 1600x1200", got)
	}
	if got := w.Surface().DrawableSize(); got != image.Pt(1600, 1200) {
		t.Errorf("drawable = %v, want 1600x1200", got)
	}
	// Repeating the same scale is not a change.
	h.SendBackingScale(w.NativeHandle(), 2)
	if len(scales) != 1 || scales[0] != 2 {
		t.Errorf("scale callbacks = %v, want [2]", scales)
	}
}

func TestAspectRatioResize(t *testing.T) {
	a, h := newTestApp(t)
	w := mustWindow(t, a, Size(unit.Px(800), unit.Px(600)), FixedAspectRatio(2))
	w.Show()
	id := w.NativeHandle()

	// Dragging the right edge drives the height.
	h.BeginLiveResize(id)
	got := h.ProposeFrameSize(id, f32.Pt(900, 628))
	if want := f32.Pt(900, 478); got != want {
		t.Errorf("adjusted frame = %v, want %v", got, want)
	}
	if got := w.Frame().Size(); got != image.Pt(900, 450) {
		t.Errorf("content = %v, want 900x450", got)
	}
	if got := w.Surface().DrawableSize(); got != image.Pt(900, 450) {
		t.Errorf("drawable = %v, want 900x450", got)
	}
	h.EndLiveResize(id)

	// Dragging the bottom edge drives the width.
	h.BeginLiveResize(id)
	got = h.ProposeFrameSize(id, f32.Pt(900, 528))
	if want := f32.Pt(1000, 528); got != want {
		t.Errorf("adjusted frame = %v, want %v", got, want)
	}
	if got := w.Frame().Size(); got != image.Pt(1000, 500) {
		t.Errorf("content = %v, want 1000x500", got)
	}
	h.EndLiveResize(id)
}

func TestResizeMinMaxClamp(t *testing.T) {
	a, h := newTestApp(t)
	w := mustWindow(t, a, Size(unit.Px(800), unit.Px(600)), MinSize(400, 300), MaxSize(1000, 800))
	w.Show()
	id := w.NativeHandle()
	h.BeginLiveResize(id)
	if got, want := h.ProposeFrameSize(id, f32.Pt(2000, 628)), f32.Pt(1000, 628); got != want {
		t.Errorf("grow: adjusted = %v, want %v", got, want)
	}
	if got, want := h.ProposeFrameSize(id, f32.Pt(200, 328)), f32.Pt(400, 328); got != want {
		t.Errorf("shrink: adjusted = %v, want %v", got, want)
	}
	h.EndLiveResize(id)
}

func TestAdjustResizeCallback(t *testing.T) {
	a, h := newTestApp(t)
	w := mustWindow(t, a, Size(unit.Px(800), unit.Px(600)))
	w.Show()
	var axes [2]bool
	w.SetHandlers(Handlers{
		Lifecycle: LifecycleCallbacks{
			AdjustResize: func(size image.Point, horizontal, vertical bool) image.Point {
				axes = [2]bool{horizontal, vertical}
				return image.Pt(640, 480)
			},
		},
	})
	id := w.NativeHandle()
	h.BeginLiveResize(id)
	if got, want := h.ProposeFrameSize(id, f32.Pt(1000, 628)), f32.Pt(640, 508); got != want {
		t.Errorf("adjusted = %v, want %v", got, want)
	}
	if !axes[0] || axes[1] {
		t.Errorf("axes = %v, want horizontal only", axes)
	}
	if got := w.Frame().Size(); got != image.Pt(640, 480) {
		t.Errorf("content = %v, want 640x480", got)
	}
	h.EndLiveResize(id)
}

func TestResizedCallback(t *testing.T) {
	a, _ := newTestApp(t)
	w := mustWindow(t, a, Size(unit.Px(800), unit.Px(600)))
	w.Show()
	var sizes []image.Point
	w.SetHandlers(Handlers{
		Lifecycle: LifecycleCallbacks{
			Resized: func(size image.Point) { sizes = append(sizes, size) },
		},
	})
	f := w.Frame()
	w.SetFrame(image.Rect(f.Min.X, f.Min.Y, f.Min.X+500, f.Min.Y+400))
	if got := w.Frame().Size(); got != image.Pt(500, 400) {
		t.Fatalf("frame size = %v, want 500x400", got)
	}
	if len(sizes) != 1 || sizes[0] != image.Pt(500, 400) {
		t.Errorf("resized callbacks = %v, want [(500,400)]", sizes)
	}
	if got := w.Surface().DrawableSize(); got != image.Pt(500, 400) {
		t.Errorf("drawable = %v, want 500x400", got)
	}
}

func TestGeometryPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geometry.yaml")

	a, h := newTestApp(t, WithGeometryStore(path))
	w := mustWindow(t, a, PersistGeometry("main"))
	w.Show()
	h.MoveWindow(w.NativeHandle(), image.Pt(300, 200))
	want := w.Frame()
	w.Close()

	a2, _ := newTestApp(t, WithGeometryStore(path))
	w2 := mustWindow(t, a2, PersistGeometry("main"))
	if got := w2.Frame(); got != want {
		t.Errorf("restored frame = %v, want %v", got, want)
	}

	// Other names place fresh.
	w3 := mustWindow(t, a2, PersistGeometry("scope"))
	if got := w3.Frame(); got == want {
		t.Errorf("unrelated record restored saved frame %v", got)
	}
}

func TestCursorPositionWindowRelative(t *testing.T) {
	a, _ := newTestApp(t)
	w := mustWindow(t, a)
	w.Show()
	min := w.Frame().Min
	a.SetCursorPosition(f32.Pt(float32(min.X)+50, float32(min.Y)+60))
	if got := w.CursorPosition(); got != f32.Pt(50, 60) {
		t.Errorf("window cursor = %v, want (50,60)", got)
	}
	w.SetCursorPosition(f32.Pt(10, 20))
	if got := a.CursorPosition(); got != f32.Pt(float32(min.X)+10, float32(min.Y)+20) {
		t.Errorf("global cursor = %v", got)
	}
}

func TestRaise(t *testing.T) {
	a, h := newTestApp(t)
	w1 := mustWindow(t, a)
	w1.Show()
	w2 := mustWindow(t, a)
	w2.Show()
	w1.Raise()
	if got := h.Raised(); got != w1.NativeHandle() {
		t.Errorf("raised = %#x, want %#x", got, w1.NativeHandle())
	}
	if got := h.KeyWindow(); got != w1.NativeHandle() {
		t.Errorf("key window = %#x, want %#x", got, w1.NativeHandle())
	}
}
