// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app connects native views to portable window semantics:
lifecycle, input translation, display-paced drawing, drag and drop.

An Application is created on a Driver, the platform layer that owns
native views. Windows are created on the application, standalone or
embedded in a foreign host view, and receive their events through
the Handlers callbacks:

	a := app.New(app.NewHeadless())
	w, err := app.NewWindow(a,
		app.Title("Example"),
		app.Size(unit.Dp(800), unit.Dp(600)),
	)
	if err != nil {
		log.Fatal(err)
	}
	w.SetHandlers(app.Handlers{
		Draw: func(now float64) {
			// Paint the surface.
		},
	})
	w.Show()
	a.Run()

One goroutine owns an application and everything created on it: the
UI thread. Drivers deliver their native callbacks on it, and every
method in this package must be called on it, with one exception.
Display refreshes may arrive on any thread through
Surface.DisplayTick; they are coalesced and handed to the UI thread
by the application loop, and dropped while no loop is serving.

Run serves the loop until Stop, or until the last window is
destroyed. Closing a standalone window first consults its
CloseRequested callback, which may veto; Terminate polls every
window the same way before quitting.

Positions and sizes cross this API in physical pixels unless noted:
window frames, event positions and drawable sizes are all in
pixels, with the origin at the top left. Window placement accepts
unit.Value coordinates, resolved against the density of the screen
the window lands on.
*/
package app
