// Package sketch provides the value types and collaborator interfaces
// for a retained-mode 2D scene graph.
//
// # Overview
//
// sketch is the foundation layer under the scene package: geometry
// (Point, Rect, Matrix), the color model, stroke attributes (Pen,
// Fill, LineStyle, Dash), the Pixmap pixel buffer, and the Surface
// interface that rendering backends implement. The retained object
// tree itself lives in the scene subpackage; font measurement lives
// in the text subpackage.
//
// # Quick Start
//
//	import (
//	    "github.com/gocanvas/sketch"
//	    "github.com/gocanvas/sketch/scene"
//	)
//
//	root := scene.NewCompound()
//	rect := scene.NewRect(10, 10, 100, 60)
//	rect.SetFillColor(sketch.Red)
//	root.Add(rect)
//
//	rec := sketch.NewRecorder()
//	root.Draw(rec) // replay rec.Commands() on any backend
//
// # Surfaces
//
// Surface is a small command-level interface (lines, rects, ellipses,
// chords, polygons, images, text). The built-in Recorder captures the
// command stream for testing and export backends; raster or windowing
// backends live outside this module and only need to implement
// Surface.
//
// # Architecture
//
// The module is organized into:
//   - sketch: geometry, color, stroke attributes, Pixmap, Surface
//   - scene: the retained object tree, compound grouping, repaint
//   - text: font metrics via go-text/typesetting with builtin fallback
package sketch
