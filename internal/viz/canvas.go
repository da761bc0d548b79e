package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Ink classifies a cell for colouring. A cell keeps the strongest ink
// drawn into it.
type Ink uint8

const (
	InkNone Ink = iota
	InkRing
	InkSpoke
	InkLabel
	InkHighlight
	InkCenter
)

// Canvas is a grid of Braille cells addressed in sub-pixels, with an ink
// per cell and optional text overlaid on whole cells.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]Ink
	text          [][]bool
	pen           Ink
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]Ink, h),
		text:   make([][]bool, h),
		pen:    InkSpoke,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]Ink, w)
		c.text[i] = make([]bool, w)
	}
	c.Clear()
	return c
}

// Pen selects the ink used by subsequent drawing calls.
func (c *Canvas) Pen(ink Ink) { c.pen = ink }

// Set turns on the sub-pixel (x, y). The canvas is Width*2 by Height*4
// sub-pixels. Cells holding text are left alone.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height || c.text[row][col] {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if c.pen > c.Ink[row][col] {
		c.Ink[row][col] = c.pen
	}
}

// Clear resets every cell to an empty pattern.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Ink[i][j] = InkNone
			c.text[i][j] = false
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle plots a circle of radius r around (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	n := int(2*math.Pi*r) + 8
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		c.Set(round(cx+r*math.Cos(th)), round(cy+r*math.Sin(th)))
	}
}

// Dot fills a small square around (x, y).
func (c *Canvas) Dot(x, y, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

// Text writes s over whole cells starting at the cell holding sub-pixel
// (x, y), centred horizontally on it.
func (c *Canvas) Text(x, y int, s string) {
	runes := []rune(s)
	col := x/2 - len(runes)/2
	row := y / 4
	if y < 0 || row >= c.Height {
		return
	}
	for i, r := range runes {
		cc := col + i
		if cc < 0 || cc >= c.Width {
			continue
		}
		c.Grid[row][cc] = r
		c.Ink[row][cc] = c.pen
		c.text[row][cc] = true
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is like String but passes each run of equal ink through paint.
func (c *Canvas) Render(paint func(Ink, string) string) string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Ink[i][j] == c.Ink[i][start] {
				continue
			}
			b.WriteString(paint(c.Ink[i][start], string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func round(v float64) int { return int(math.Round(v)) }
