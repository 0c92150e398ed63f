// Package fontparts provides an environment-independent object model for
// font engineering.
//
// # Overview
//
// fontparts defines a vocabulary of objects (Font, Layer, Glyph, Contour,
// Point, Segment, BPoint, Component, Anchor, Guideline, Image, Info,
// Kerning, Groups and Lib) that font editing environments implement
// against. Every attribute assignment and collection mutation funnels
// through the validation layer in the normalizers sub-package, so values
// read back from the model are always canonical.
//
// # Quick start
//
//	font, err := fontparts.NewFont()
//	if err != nil {
//		log.Fatal(err)
//	}
//	glyph, _ := font.NewGlyph("A")
//	glyph.SetWidth(500)
//
//	pen := glyph.GetPen()
//	pen.MoveTo(fontparts.Position{X: 50, Y: 0})
//	pen.LineTo(fontparts.Position{X: 250, Y: 700})
//	pen.LineTo(fontparts.Position{X: 450, Y: 0})
//	pen.ClosePath()
//
// # Environments
//
// Fonts are produced by environments. The built-in in-memory environment
// backs NewFont; the opentype sub-package registers a read-only
// environment that loads .ttf and .otf binaries into the object model:
//
//	import _ "github.com/robotools/fontparts/opentype"
//
//	font, err := fontparts.OpenFont("SourceSans.ttf")
//
// Custom environments register themselves with RegisterEnvironment.
//
// # Validation
//
// Setters return an error when a value is rejected. All validation errors
// wrap normalizers.ErrInvalid and carry object/attribute context through
// ValidationError:
//
//	err := glyph.SetName("")
//	// err: Glyph.name: fontparts: invalid value: glyph names must be ...
//
// # Coordinate system
//
// Font units, y increases upward, angles in degrees counter-clockwise
// from the x axis.
package fontparts
