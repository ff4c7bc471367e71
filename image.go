package xwsolver

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

const (
	cellSize   = 32
	cellBorder = 2
)

// WriteImage renders an assignment as a PNG: white cells with centered
// letters on a black canvas, blocked cells left black.
func (c *Crossword) WriteImage(w io.Writer, assignment Assignment) error {
	letters := c.LetterGrid(assignment)

	img := image.NewRGBA(image.Rect(0, 0, c.Width*cellSize, c.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := inconsolata.Bold8x16
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.structure[i][j] {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[i][j] == 0 {
				continue
			}
			s := string(letters[i][j])
			width := drawer.MeasureString(s)
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(j*cellSize+cellSize/2) - width/2,
				Y: fixed.I(i*cellSize + (cellSize+face.Ascent)/2),
			}
			drawer.DrawString(s)
		}
	}

	return png.Encode(w, img)
}

// SaveImage writes the rendered assignment to a PNG file.
func (c *Crossword) SaveImage(path string, assignment Assignment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	return c.WriteImage(f, assignment)
}
