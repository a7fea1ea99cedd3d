// Package raster draws grids as images, one square block per cell.
package raster

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
	"golang.org/x/image/draw"
)

type Options struct {
	// CellPx is the side of one cell in pixels. Defaults to 20.
	CellPx int
	// GridLines draws a 1px black line between cells.
	GridLines bool
}

var lineColor = stdcolor.RGBA{A: 0xff}

// Image draws g. Every cell of g becomes one pixel which is then scaled
// up with nearest-neighbour sampling so cell edges stay sharp.
func Image(g grid.Grid, opts Options) *image.RGBA {
	if opts.CellPx < 1 {
		opts.CellPx = 20
	}

	rows, cols := g.Rows(), g.Cols()
	small := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for row := range rows {
		for col := range cols {
			rgb := g.Cell(row, col).RGB()
			small.SetRGBA(col, row, stdcolor.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff})
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols*opts.CellPx, rows*opts.CellPx))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)

	if opts.GridLines && opts.CellPx > 2 {
		bounds := dst.Bounds()
		for col := 1; col < cols; col++ {
			x := col * opts.CellPx
			draw.Draw(dst, image.Rect(x, 0, x+1, bounds.Max.Y), image.NewUniform(lineColor), image.Point{}, draw.Src)
		}
		for row := 1; row < rows; row++ {
			y := row * opts.CellPx
			draw.Draw(dst, image.Rect(0, y, bounds.Max.X, y+1), image.NewUniform(lineColor), image.Point{}, draw.Src)
		}
	}
	return dst
}

// EncodePNG writes g as a PNG.
func EncodePNG(w io.Writer, g grid.Grid, opts Options) error {
	if err := png.Encode(w, Image(g, opts)); err != nil {
		return fmt.Errorf("raster: encode %s grid: %w", g.ID(), err)
	}
	return nil
}

// tableGrid reads back the colors drawn in a rendered table.
type tableGrid struct {
	t *render.Table
}

func (g tableGrid) ID() point.GridID { return g.t.Grid }

func (g tableGrid) CellID(row, col int) point.CellID {
	c, ok := g.t.Data(row, col)
	if !ok {
		panic(&grid.IndexError{Grid: g.t.Grid, Row: row, Col: col, Rows: g.t.GridRows, Cols: g.t.GridCols})
	}
	return c.Address
}

func (g tableGrid) Rows() int { return g.t.GridRows }
func (g tableGrid) Cols() int { return g.t.GridCols }

func (g tableGrid) Cell(row, col int) color.Color {
	c, ok := g.t.Data(row, col)
	if !ok {
		panic(&grid.IndexError{Grid: g.t.Grid, Row: row, Col: col, Rows: g.t.GridRows, Cols: g.t.GridCols})
	}
	return c.Color
}

func (tableGrid) SetCell(int, int, color.Color) { panic(grid.ErrReadOnly) }
func (tableGrid) Clear()                         { panic(grid.ErrReadOnly) }

// Panels draws the tables of panels left to right, one cell apart, on a
// white background.
func Panels(panels []render.Panel, opts Options) *image.RGBA {
	if opts.CellPx < 1 {
		opts.CellPx = 20
	}

	images := make([]*image.RGBA, 0, len(panels))
	width, height := 0, 0
	for i, p := range panels {
		img := Image(tableGrid{p.Table}, opts)
		images = append(images, img)
		if i > 0 {
			width += opts.CellPx
		}
		width += img.Bounds().Dx()
		height = max(height, img.Bounds().Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.White.RGB()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(stdcolor.RGBA{R: white.R, G: white.G, B: white.B, A: 0xff}), image.Point{}, draw.Src)
	x := 0
	for _, img := range images {
		r := img.Bounds().Add(image.Pt(x, 0))
		draw.Draw(dst, r, img, image.Point{}, draw.Src)
		x += img.Bounds().Dx() + opts.CellPx
	}
	return dst
}

// EncodePanelsPNG writes panels as one PNG.
func EncodePanelsPNG(w io.Writer, panels []render.Panel, opts Options) error {
	if err := png.Encode(w, Panels(panels, opts)); err != nil {
		return fmt.Errorf("raster: encode panels: %w", err)
	}
	return nil
}
