// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"math"

	"github.com/olsgo/sash/app/internal/diag"
	"github.com/olsgo/sash/app/internal/wingeom"
	"github.com/olsgo/sash/f32"
	"github.com/olsgo/sash/unit"
)

// Stage describes where a window is in its lifecycle.
type Stage uint8

const (
	// StageUnattached is the zero stage, before the native view
	// exists.
	StageUnattached Stage = iota
	// StageCreated means the native view exists but has never been
	// shown.
	StageCreated
	// StageShown means the window is on screen.
	StageShown
	// StageHidden means the window was shown and is now ordered
	// out.
	StageHidden
	// StageClosed means the native view is gone. The window cannot
	// be revived.
	StageClosed
)

func (s Stage) String() string {
	switch s {
	case StageUnattached:
		return "unattached"
	case StageCreated:
		return "created"
	case StageShown:
		return "shown"
	case StageHidden:
		return "hidden"
	case StageClosed:
		return "closed"
	default:
		return "invalid"
	}
}

// DecorationKind selects the chrome of a standalone window.
type DecorationKind uint8

const (
	// NativeDecoration uses the host's title bar and border.
	NativeDecoration DecorationKind = iota
	// ClientDecoration creates a borderless window whose content
	// draws its own chrome.
	ClientDecoration
	// PopupDecoration creates a borderless transient window. Popup
	// windows never become the key window.
	PopupDecoration
)

func (k DecorationKind) String() string {
	switch k {
	case NativeDecoration:
		return "native"
	case ClientDecoration:
		return "client"
	case PopupDecoration:
		return "popup"
	default:
		return "invalid"
	}
}

// Config holds the window parameters resolved at creation time.
type Config struct {
	// Title of the window, shown in native decorations.
	Title string
	// X, Y place the window's content origin. The zero Value
	// centers the window on its screen.
	X, Y unit.Value
	// Width, Height size the window's content area. The zero Value
	// means 800x600 dp.
	Width, Height unit.Value
	// MinSize and MaxSize bound interactive resizing, in dp. A zero
	// point leaves the axis unbounded.
	MinSize, MaxSize image.Point
	// Kind selects the window decorations.
	Kind DecorationKind
	// Aspect fixes the content width/height ratio during
	// interactive resizing. Zero leaves resizing free.
	Aspect float32
	// Quit enables the primary-modifier Q and W close shortcuts for
	// this window.
	Quit bool
	// Persist names the record used to save and restore the window
	// geometry. Empty disables persistence.
	Persist string
}

// Option alters a window Config.
type Option func(*Config)

// Title sets the window title.
func Title(t string) Option {
	return func(c *Config) { c.Title = t }
}

// Position places the window's content origin in global
// coordinates.
func Position(x, y unit.Value) Option {
	return func(c *Config) { c.X, c.Y = x, y }
}

// Size sets the window's content size.
func Size(w, h unit.Value) Option {
	return func(c *Config) { c.Width, c.Height = w, h }
}

// MinSize bounds interactive shrinking, in dp.
func MinSize(w, h int) Option {
	return func(c *Config) { c.MinSize = image.Pt(w, h) }
}

// MaxSize bounds interactive growing, in dp.
func MaxSize(w, h int) Option {
	return func(c *Config) { c.MaxSize = image.Pt(w, h) }
}

// Decoration selects the window chrome.
func Decoration(k DecorationKind) Option {
	return func(c *Config) { c.Kind = k }
}

// FixedAspectRatio locks the content width/height ratio during
// interactive resizing. Zero unlocks it.
func FixedAspectRatio(ratio float32) Option {
	return func(c *Config) { c.Aspect = ratio }
}

// QuitShortcut enables the primary-modifier Q and W shortcuts,
// which request close of every registered window. Off unless
// requested.
func QuitShortcut() Option {
	return func(c *Config) { c.Quit = true }
}

// PersistGeometry saves the window frame under name when the window
// is destroyed and restores it on the next creation.
func PersistGeometry(name string) Option {
	return func(c *Config) { c.Persist = name }
}

// Window connects a native view to the application's callbacks. It
// owns the surface that paints the view and translates native input
// into portable events.
//
// All methods must be called on the UI thread.
type Window struct {
	app     *Application
	view    View
	surface *Surface

	handlers Handlers

	stage    Stage
	cfg      Config
	screen   Screen
	scale    float32
	frame    image.Rectangle
	embedded bool
	parent   ViewID

	visible  bool
	attached bool
	closing  bool

	relativeMouse  bool
	dragSourcePath string

	in inputState
}

// NewWindow creates a standalone window. The window starts hidden;
// call Show to put it on screen.
func NewWindow(a *Application, opts ...Option) (*Window, error) {
	cfg := Config{}
	for _, o := range opts {
		o(&cfg)
	}
	screens := a.driver.Screens()
	if len(screens) == 0 {
		return nil, ErrNoScreens
	}
	screen, frame := resolvePlacement(cfg, screens)
	if rec, ok := a.restoreGeometry(cfg.Persist); ok {
		screen, frame = applyGeometry(rec, screens)
	}
	w := &Window{
		app:    a,
		stage:  StageCreated,
		cfg:    cfg,
		screen: screen,
		frame:  frame,
	}
	view, err := a.driver.NewView(ViewConfig{Frame: frame, Scale: screen.Scale})
	if err != nil {
		return nil, err
	}
	w.view = view
	w.scale = view.Scale()
	w.frame = view.Frame()
	w.surface = newSurface(a, w, w.logicalBounds(), w.scale)
	a.windows.Add(w)
	return w, nil
}

// NewEmbeddedWindow creates a window hosted inside parent, a native
// view owned by another application. Embedded windows are visible
// for their whole lifetime and ignore occlusion; the host decides
// what is on screen.
func NewEmbeddedWindow(a *Application, parent ViewID, opts ...Option) (*Window, error) {
	if parent == 0 {
		return nil, ErrNoParent
	}
	cfg := Config{}
	for _, o := range opts {
		o(&cfg)
	}
	screens := a.driver.Screens()
	if len(screens) == 0 {
		return nil, ErrNoScreens
	}
	m := unit.Metric{PxPerDp: screens[0].Scale}
	usable := screens[0].PxUsable()
	width := m.Px(cfg.Width, usable.Dx(), m.Px(unit.Dp(800), 0, 0))
	height := m.Px(cfg.Height, usable.Dy(), m.Px(unit.Dp(600), 0, 0))
	w := &Window{
		app:      a,
		stage:    StageCreated,
		cfg:      cfg,
		screen:   screens[0],
		embedded: true,
		parent:   parent,
		visible:  true,
	}
	view, err := a.driver.NewView(ViewConfig{
		Frame:  image.Rect(0, 0, width, height),
		Scale:  screens[0].Scale,
		Parent: parent,
	})
	if err != nil {
		return nil, err
	}
	w.view = view
	w.scale = view.Scale()
	w.frame = view.Frame()
	w.surface = newSurface(a, w, w.logicalBounds(), w.scale)
	w.stage = StageShown
	a.windows.Add(w)
	if w.scale != screens[0].Scale {
		// Sizes were resolved against the primary density, but the
		// view adopted its host's. Re-resolve at the real density;
		// the resize round trip settles the frame and drawable.
		m = unit.Metric{PxPerDp: w.scale}
		width = m.Px(cfg.Width, usable.Dx(), m.Px(unit.Dp(800), 0, 0))
		height = m.Px(cfg.Height, usable.Dy(), m.Px(unit.Dp(600), 0, 0))
		view.SetFrame(image.Rect(0, 0, width, height))
	}
	return w, nil
}

// resolvePlacement computes the content frame in physical pixels.
// A first pass estimates the requested origin against the primary
// screen and picks the screen containing it; a second pass resolves
// everything against that screen, so percent sizes and positions
// follow the density of the screen the window actually lands on.
func resolvePlacement(cfg Config, screens []Screen) (Screen, image.Rectangle) {
	screen := screens[0]
	if origin, ok := logicalOrigin(cfg, screen); ok {
		for _, s := range screens {
			if origin.In(s.Bounds) {
				screen = s
				break
			}
		}
	}
	return screen, placeOnScreen(cfg, screen)
}

// logicalOrigin estimates the requested origin in logical global
// coordinates, the space where screens tile, for picking the target
// screen. Fully default positions stay on the primary screen.
func logicalOrigin(cfg Config, primary Screen) (image.Point, bool) {
	if cfg.X.IsDefault() && cfg.Y.IsDefault() {
		return image.Point{}, false
	}
	x := logicalAxis(cfg.X, primary.Scale, primary.Usable.Min.X, primary.Usable.Dx())
	y := logicalAxis(cfg.Y, primary.Scale, primary.Usable.Min.Y, primary.Usable.Dy())
	return image.Pt(x, y), true
}

func logicalAxis(v unit.Value, scale float32, usableMin, usableSpan int) int {
	switch {
	case v.IsDefault():
		return usableMin + usableSpan/2
	case v.U == unit.UnitPercent:
		return usableMin + round(v.V/100*float32(usableSpan))
	case v.U == unit.UnitDp:
		return round(v.V)
	default:
		return round(v.V / scale)
	}
}

func placeOnScreen(cfg Config, s Screen) image.Rectangle {
	m := unit.Metric{PxPerDp: s.Scale}
	usable := s.PxUsable()
	width := m.Px(cfg.Width, usable.Dx(), m.Px(unit.Dp(800), 0, 0))
	height := m.Px(cfg.Height, usable.Dy(), m.Px(unit.Dp(600), 0, 0))
	x := placeAxis(cfg.X, m, s.PxBounds().Min.X, s.Bounds.Min.X, usable.Min.X, usable.Dx(), width)
	y := placeAxis(cfg.Y, m, s.PxBounds().Min.Y, s.Bounds.Min.Y, usable.Min.Y, usable.Dy(), height)
	return image.Rect(x, y, x+width, y+height)
}

// placeAxis maps one positioning value to a global pixel
// coordinate. Dp values are global logical coordinates and are
// anchored to the screen's pixel origin; percent values span the
// usable area; pixel values pass through.
func placeAxis(v unit.Value, m unit.Metric, pxMin, logicalMin, usableMin, usableSpan, extent int) int {
	switch {
	case v.IsDefault():
		return usableMin + (usableSpan-extent)/2
	case v.U == unit.UnitPercent:
		return usableMin + m.Px(v, usableSpan, 0)
	case v.U == unit.UnitDp:
		return pxMin + round((v.V-float32(logicalMin))*m.PxPerDp)
	default:
		return round(v.V)
	}
}

func (a *Application) restoreGeometry(name string) (wingeom.Record, bool) {
	if name == "" || a.geom == nil {
		return wingeom.Record{}, false
	}
	rec, ok, err := a.geom.Lookup(name)
	if err != nil {
		diag.Logf("window", "geometry lookup %q: %v", name, err)
		return wingeom.Record{}, false
	}
	return rec, ok
}

// applyGeometry turns a stored record back into a frame. The size
// is rescaled when the record was saved under a different backing
// scale than the screen it restores onto.
func applyGeometry(rec wingeom.Record, screens []Screen) (Screen, image.Rectangle) {
	screen := screens[0]
	for _, s := range screens {
		if image.Pt(rec.X, rec.Y).In(s.PxBounds()) {
			screen = s
			break
		}
	}
	width, height := rec.Width, rec.Height
	if rec.Scale > 0 && rec.Scale != screen.Scale {
		ratio := screen.Scale / rec.Scale
		width = round(float32(width) * ratio)
		height = round(float32(height) * ratio)
	}
	return screen, image.Rect(rec.X, rec.Y, rec.X+width, rec.Y+height)
}

// SetHandlers installs the window's callbacks. Unset fields are
// skipped when their event fires.
func (w *Window) SetHandlers(h Handlers) {
	w.handlers = h
}

// Show puts the window on screen. The first show of a standalone
// window attaches it to the host's window list; popup and client
// decorated windows attach borderless. Non-popup windows become
// key.
func (w *Window) Show() {
	if w.stage == StageClosed {
		return
	}
	if !w.embedded && !w.attached {
		if err := w.view.Attach(w.cfg.Kind, w.cfg.Title); err != nil {
			diag.Logf("window", "attach view %#x: %v", uintptr(w.NativeHandle()), err)
			return
		}
		w.attached = true
	}
	w.view.Show()
	if !w.embedded && w.cfg.Kind != PopupDecoration {
		w.view.MakeKey()
	}
	w.stage = StageShown
	w.setVisible(true)
}

// Hide orders the window out without destroying it.
func (w *Window) Hide() {
	if w.stage != StageShown {
		return
	}
	w.view.Hide()
	w.stage = StageHidden
	w.setVisible(false)
}

// Raise brings the window to the front of its level and, unless it
// is a popup, makes it key.
func (w *Window) Raise() {
	if w.stage == StageClosed {
		return
	}
	w.view.Raise()
	if !w.embedded && w.cfg.Kind != PopupDecoration {
		w.view.MakeKey()
	}
}

// Close starts closing the window. Standalone windows go through
// the host's close request so the CloseRequested callback can veto;
// embedded windows are torn down directly since their host view
// outlives them.
func (w *Window) Close() {
	if w.stage == StageClosed || w.closing {
		return
	}
	if w.embedded {
		w.destroy()
		return
	}
	w.closing = true
	w.view.RequestClose()
	w.closing = false
}

// closeRequested asks the window whether it may close. Without a
// CloseRequested callback the answer is yes.
func (w *Window) closeRequested() bool {
	if cb := w.handlers.Lifecycle.CloseRequested; cb != nil {
		return cb()
	}
	return true
}

// destroy releases the native view and unregisters the window. It
// is safe to call more than once; later calls do nothing.
func (w *Window) destroy() {
	if w.stage == StageClosed {
		return
	}
	w.persistGeometry()
	w.app.windows.Remove(w)
	w.setVisible(false)
	w.surface.teardown()
	w.view.Release()
	w.stage = StageClosed
	if cb := w.handlers.Lifecycle.Destroyed; cb != nil {
		cb()
	}
	w.app.stopIfLastClosed()
}

func (w *Window) persistGeometry() {
	if w.cfg.Persist == "" || w.app.geom == nil {
		return
	}
	rec := wingeom.Record{
		X:      w.frame.Min.X,
		Y:      w.frame.Min.Y,
		Width:  w.frame.Dx(),
		Height: w.frame.Dy(),
		Scale:  w.scale,
	}
	if err := w.app.geom.Save(w.cfg.Persist, rec); err != nil {
		diag.Logf("window", "geometry save %q: %v", w.cfg.Persist, err)
	}
}

// setVisible records a visibility change and notifies the window.
// Embedded windows are pinned visible; the host controls what is
// actually on screen.
func (w *Window) setVisible(v bool) {
	if w.embedded {
		v = true
	}
	if w.visible == v {
		return
	}
	w.visible = v
	if cb := w.handlers.Lifecycle.VisibilityChanged; cb != nil {
		cb(v)
	}
}

// SetTitle renames the window.
func (w *Window) SetTitle(t string) {
	w.cfg.Title = t
	if w.attached {
		w.view.SetTitle(t)
	}
}

// SetFrame moves and resizes the window's content area, in global
// physical pixels.
func (w *Window) SetFrame(r image.Rectangle) {
	if w.stage == StageClosed {
		return
	}
	w.view.SetFrame(r)
}

// Frame returns the window's content area in global physical
// pixels.
func (w *Window) Frame() image.Rectangle {
	return w.frame
}

// Screen returns the screen the window was placed on.
func (w *Window) Screen() Screen {
	return w.screen
}

// Scale returns the window's backing scale, the ratio of physical
// pixels to logical coordinates.
func (w *Window) Scale() float32 {
	return w.scale
}

// Stage returns the window's lifecycle stage.
func (w *Window) Stage() Stage {
	return w.stage
}

// Visible reports whether the window contents are on screen.
// Embedded windows are always visible.
func (w *Window) Visible() bool {
	if w.embedded {
		return true
	}
	return w.visible
}

// Embedded reports whether the window lives inside a host view.
func (w *Window) Embedded() bool {
	return w.embedded
}

// Surface returns the surface painting the window.
func (w *Window) Surface() *Surface {
	return w.surface
}

// NativeHandle returns the opaque handle of the window's native
// view.
func (w *Window) NativeHandle() ViewID {
	if w.view == nil {
		return 0
	}
	return w.view.Handle()
}

// ContentInsets returns the size in logical coordinates of native
// decorations around the content area.
func (w *Window) ContentInsets() f32.Point {
	return w.view.ContentInsets()
}

// SetFixedAspectRatio locks the content width/height ratio for
// interactive resizing. Zero unlocks it.
func (w *Window) SetFixedAspectRatio(ratio float32) {
	w.cfg.Aspect = ratio
}

// FixedAspectRatio returns the locked ratio, or zero.
func (w *Window) FixedAspectRatio() float32 {
	return w.cfg.Aspect
}

// SetMouseRelativeMode hides the cursor and, while a button is
// down, warps it back to the position of the last press after every
// drag event, turning the mouse into a relative device.
func (w *Window) SetMouseRelativeMode(enabled bool) {
	if w.relativeMouse == enabled {
		return
	}
	w.relativeMouse = enabled
	w.app.driver.SetCursorVisible(!enabled)
}

// MouseRelativeMode reports whether relative mouse mode is on.
func (w *Window) MouseRelativeMode() bool {
	return w.relativeMouse
}

// SetDragDropSource arms the window as a drag source: the next
// primary button press starts dragging path, presented with the
// host's icon for the file. An empty path disarms it.
func (w *Window) SetDragDropSource(path string) {
	w.dragSourcePath = path
}

// CursorPosition returns the pointer position relative to the
// window content, in physical pixels.
func (w *Window) CursorPosition() f32.Point {
	pos := w.app.driver.CursorPos()
	return pos.Sub(f32.Pt(float32(w.frame.Min.X), float32(w.frame.Min.Y)))
}

// SetCursorPosition warps the pointer to a position relative to the
// window content, in physical pixels.
func (w *Window) SetCursorPosition(pos f32.Point) {
	w.app.driver.SetCursorPos(pos.Add(f32.Pt(float32(w.frame.Min.X), float32(w.frame.Min.Y))))
}

// refreshScreen re-resolves which screen holds the window origin.
func (w *Window) refreshScreen() {
	for _, s := range w.app.driver.Screens() {
		if w.frame.Min.In(s.PxBounds()) {
			w.screen = s
			return
		}
	}
}

// logicalBounds returns the content size in logical coordinates.
func (w *Window) logicalBounds() f32.Point {
	return f32.Pt(float32(w.frame.Dx())/w.scale, float32(w.frame.Dy())/w.scale)
}

// adjustAspect constrains a proposed content size to ratio. The
// dragged axis wins: dragging an edge recomputes the other axis,
// dragging a corner or resizing programmatically lets the width
// drive.
func adjustAspect(size, min, max image.Point, ratio float32, horizontal, vertical bool) image.Point {
	size = clampSize(size, min, max)
	if ratio <= 0 {
		return size
	}
	switch {
	case horizontal && !vertical:
		size.Y = round(float32(size.X) / ratio)
	case vertical && !horizontal:
		size.X = round(float32(size.Y) * ratio)
	default:
		size.Y = round(float32(size.X) / ratio)
	}
	return size
}

func clampSize(size, min, max image.Point) image.Point {
	if min.X > 0 && size.X < min.X {
		size.X = min.X
	}
	if min.Y > 0 && size.Y < min.Y {
		size.Y = min.Y
	}
	if max.X > 0 && size.X > max.X {
		size.X = max.X
	}
	if max.Y > 0 && size.Y > max.Y {
		size.Y = max.Y
	}
	return size
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
