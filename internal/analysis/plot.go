package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlotHeight charts height above the floor against time.
func PlotHeight(res *Result, width, height int) string {
	if res == nil || len(res.Samples) == 0 {
		return ""
	}
	return asciigraph.Plot(res.Heights(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("height above floor (px) over %.1fs", res.Duration)),
	)
}

// Trajectory draws the ball centre path inside the viewport box.
func Trajectory(res *Result, width, height int) string {
	if res == nil || len(res.Samples) == 0 || width < 3 || height < 3 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Walls
	for col := 0; col < width; col++ {
		canvas[0][col] = '─'
		canvas[height-1][col] = '─'
	}
	for row := 0; row < height; row++ {
		canvas[row][0] = '│'
		canvas[row][width-1] = '│'
	}
	canvas[0][0], canvas[0][width-1] = '┌', '┐'
	canvas[height-1][0], canvas[height-1][width-1] = '└', '┘'

	w, h := res.Bounds.W, res.Bounds.H
	if w <= 0 || h <= 0 {
		return ""
	}
	cell := func(x, y float64) (int, int) {
		col := 1 + int(x/w*float64(width-2))
		row := 1 + int(y/h*float64(height-2))
		return min(max(col, 1), width-2), min(max(row, 1), height-2)
	}

	for _, s := range res.Samples {
		col, row := cell(s.X, s.Y)
		if canvas[row][col] == ' ' {
			canvas[row][col] = '·'
		}
	}
	final := res.Final()
	col, row := cell(final.X, final.Y)
	canvas[row][col] = '●'

	var sb strings.Builder
	for _, r := range canvas {
		sb.WriteString(string(r))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// WriteCSV writes one row per sample.
func WriteCSV(out io.Writer, res *Result) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"t", "x", "y", "vx", "vy", "contact"}); err != nil {
		return err
	}
	for _, s := range res.Samples {
		row := []string{
			strconv.FormatFloat(s.T, 'f', 6, 64),
			strconv.FormatFloat(s.X, 'f', 6, 64),
			strconv.FormatFloat(s.Y, 'f', 6, 64),
			strconv.FormatFloat(s.VX, 'f', 6, 64),
			strconv.FormatFloat(s.VY, 'f', 6, 64),
			s.Contact.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
