// Package recording provides a DrawingSurface that records draw calls as
// typed commands instead of rasterizing them.
//
// A Recorder captures every call a sketch.Graphics makes on its surface.
// Paths and images are copied into a ResourcePool and referenced by typed
// handles, so a finished Recording stays valid after the Graphics reuses
// its buffers. A Recording can be replayed onto any other DrawingSurface.
//
// Design follows Cairo's recording surface: typed command structs for
// inspectability rather than a binary serialization format.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	g := sketch.NewGraphics(rec, 800, 600)
//	g.BeginDraw()
//	g.Triangle(10, 10, 90, 10, 50, 80)
//	_ = g.EndDraw()
//
//	r := rec.FinishRecording()
//	fmt.Println(r.Count(recording.CmdDrawPath)) // 2: fill and stroke
//
//	// Replay onto pixels
//	img := surface.NewImageSurface(800, 600)
//	_ = r.Playback(img)
package recording
