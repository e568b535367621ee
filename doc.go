// Package xdisplay manages per-screen display names.
//
// Every screen may carry its own display name. When it does not, the
// process-wide default display identifier is used instead. Names are set
// explicitly, reset to a marker value, or derived from the screen index
// ("Display-7" for screen 7).
//
// The pure accessors live in service/naming and operate directly on
// *screen.Screen values. The Service façade in this package adds a screen
// registry with pluggable storage, change events, logging and tracing:
//
//	srv, _ := xdisplay.New()
//	s, _ := srv.AddScreen(ctx)
//	_ = srv.SetDisplayNameAuto(ctx, s.Num)
//	name, _ := srv.DisplayName(ctx, s.Num) // "Display-0"
package xdisplay
