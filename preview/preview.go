// This file is part of Painting64.
//
// Painting64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Painting64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Painting64.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/Chlorobite/B3313tools-Painting64/curated"
	"github.com/Chlorobite/B3313tools-Painting64/logger"
	"github.com/Chlorobite/B3313tools-Painting64/painting"
)

// Sentinel error patterns.
const (
	BadSize = "preview: image size of %dx%d is too small"
)

// space around the edge of the map in pixels
const margin = 24

// the smallest image that can be drawn
const minSize = margin*2 + 16

// Background colour of the map.
var Background = color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}

// paintings are coloured by level ID
var levelColours = []color.NRGBA{
	{R: 0xff, G: 0xd0, B: 0x40, A: 0xff},
	{R: 0x40, G: 0xd0, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x60, B: 0x60, A: 0xff},
	{R: 0x80, G: 0xff, B: 0x80, A: 0xff},
	{R: 0xd0, G: 0x80, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xa0, B: 0xd0, A: 0xff},
}

func colourOf(levelID uint8) color.NRGBA {
	return levelColours[int(levelID)%len(levelColours)]
}

// segment is the line of a single painting in world coordinates.
type segment struct {
	x0, z0 float64
	x1, z1 float64
}

func segmentOf(p painting.Painting) segment {
	yaw := float64(p.Yaw) * math.Pi / 180
	return segment{
		x0: float64(p.PosX),
		z0: float64(p.PosZ),
		x1: float64(p.PosX) + float64(p.Size)*math.Cos(yaw),
		z1: float64(p.PosZ) - float64(p.Size)*math.Sin(yaw),
	}
}

// projection maps world coordinates to pixel coordinates.
type projection struct {
	minX, minZ float64
	scale      float64
	offX, offZ float64
}

func newProjection(segs []segment, width, height int) projection {
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		minX = math.Min(minX, math.Min(s.x0, s.x1))
		maxX = math.Max(maxX, math.Max(s.x0, s.x1))
		minZ = math.Min(minZ, math.Min(s.z0, s.z1))
		maxZ = math.Max(maxZ, math.Max(s.z0, s.z1))
	}

	w := float64(width - margin*2)
	h := float64(height - margin*2)
	spanX := maxX - minX
	spanZ := maxZ - minZ

	pr := projection{minX: minX, minZ: minZ, scale: 1}
	if spanX > 0 || spanZ > 0 {
		pr.scale = math.Min(w/math.Max(spanX, 1), h/math.Max(spanZ, 1))
	}

	// centre the map in the image
	pr.offX = margin + (w-spanX*pr.scale)/2
	pr.offZ = margin + (h-spanZ*pr.scale)/2

	return pr
}

func (pr projection) point(x, z float64) image.Point {
	return image.Point{
		X: int(math.Round(pr.offX + (x-pr.minX)*pr.scale)),
		Y: int(math.Round(pr.offZ + (z-pr.minZ)*pr.scale)),
	}
}

// Draw the map of the paintings.
func Draw(entries []*painting.Committed, width int, height int) (*image.NRGBA, error) {
	if width < minSize || height < minSize {
		return nil, curated.Errorf(BadSize, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	if len(entries) == 0 {
		drawShadowedString(img, image.White, fixed.P(margin, margin+16), "no paintings")
		return img, nil
	}

	segs := make([]segment, len(entries))
	for i, e := range entries {
		segs[i] = segmentOf(e.Painting)
	}
	pr := newProjection(segs, width, height)

	for i, e := range entries {
		clr := colourOf(e.LevelID)
		a := pr.point(segs[i].x0, segs[i].z0)
		b := pr.point(segs[i].x1, segs[i].z1)

		drawLine(img, a, b, clr)
		drawOutlineBox(img, image.NewUniform(clr), a.X-2, a.Y-2, 4, 4)
		drawShadowedString(img, image.NewUniform(clr), fixed.P(a.X+4, a.Y-4), fmt.Sprintf("%d", e.Index))
	}

	logger.Logf(logger.Allow, "preview", "drawn %d paintings at scale %.4f", len(entries), pr.scale)

	return img, nil
}

func drawShadowedString(g draw.Image, clr image.Image, dot fixed.Point26_6, s string) {
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			(&font.Drawer{
				Dst:  g,
				Src:  image.Black,
				Face: inconsolata.Bold8x16,
				Dot:  fixed.Point26_6{X: dot.X + fixed.I(ox), Y: dot.Y + fixed.I(oy)},
			}).DrawString(s)
		}
	}

	(&font.Drawer{
		Dst:  g,
		Src:  clr,
		Face: inconsolata.Bold8x16,
		Dot:  dot,
	}).DrawString(s)
}

func drawOutlineBox(g draw.Image, clr image.Image, x, y int, w, h int) {
	draw.Draw(g, image.Rect(x, y, x+w, y+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x+w, y, x+w+1, y+h+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x, y+h, x+w, y+h+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x, y, x+1, y+h), clr, image.Point{}, draw.Over)
}

// drawLine is Bresenham's line algorithm.
func drawLine(g draw.Image, a, b image.Point, clr color.Color) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx + dy
	for {
		g.Set(a.X, a.Y, clr)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
