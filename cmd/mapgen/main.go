// mapgen prints a generated map without starting the game, for tuning
// difficulty settings:
//
//	go run ./cmd/mapgen -difficulty hard -seed 7
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"robot-battle/internal/config"
	"robot-battle/internal/gamemap"
	"robot-battle/internal/generate"
	"strings"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"
)

var textureStyles = []color.Style{
	{color.BgGreen, color.FgBlack},
	{color.BgYellow, color.FgBlack},
	{color.BgCyan, color.FgBlack},
	{color.BgBlue, color.FgWhite},
	{color.BgMagenta, color.FgWhite},
	{color.BgGray, color.FgWhite},
}

var kindStyles = map[gamemap.Kind]color.Style{
	gamemap.KindChasm:  {color.BgBlack, color.FgGray},
	gamemap.KindRobot:  {color.FgRed, color.OpBold},
	gamemap.KindCharge: {color.FgYellow, color.OpBold},
	gamemap.KindKey:    {color.FgCyan, color.OpBold},
	gamemap.KindPlayer: {color.FgGreen, color.BgBlack, color.OpBold},
	gamemap.KindExit:   {color.FgWhite, color.BgRed, color.OpBold},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mapgen", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to a YAML config (embedded defaults if empty)")
	difficulty := fs.String("difficulty", "normal", "Difficulty to generate")
	seed := fs.Int64("seed", 0, "Map seed (0 picks one from the clock)")
	labels := fs.Bool("labels", false, "Print raw cell labels instead of a coloured map")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg *config.File
	var err error
	if *cfgPath == "" {
		cfg, err = config.Default()
	} else {
		cfg, err = config.Load(*cfgPath)
	}
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen, err := cfg.Generator(*difficulty, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}
	grid, err := generate.Generate(gen)
	if err != nil {
		return err
	}

	if *labels {
		printLabels(out, grid)
	} else {
		printMap(out, grid, colorOutput(out), cellWidth(out, grid.Cols))
	}
	e := gamemap.ConvertMap(grid)
	fmt.Fprintf(out, "seed %d  %s  %dx%d  robots %d  charges %d  keys %d  clefts %d\n",
		*seed, *difficulty, grid.Rows, grid.Cols,
		len(e.Robots), len(e.Charges), len(e.Keys), grid.Count(gamemap.KindChasm))
	return nil
}

// printLabels writes one line per row of space separated labels.
func printLabels(out io.Writer, grid *gamemap.Grid) {
	for _, row := range grid.Labels() {
		fmt.Fprintln(out, strings.Join(row, " "))
	}
}

// printMap writes each cell padded to width, coloured by kind or texture
// when colored is set.
func printMap(out io.Writer, grid *gamemap.Grid, colored bool, width int) {
	var sb strings.Builder
	for r := range grid.Rows {
		sb.Reset()
		for c := range grid.Cols {
			cell := grid.At(gamemap.Position{Row: r, Col: c})
			text := padCell(grid.Tokens.Label(cell), cell, width)
			if colored {
				text = styleFor(cell).Sprint(text)
			}
			sb.WriteString(text)
		}
		fmt.Fprintln(out, sb.String())
	}
}

func padCell(label string, cell gamemap.Cell, width int) string {
	if cell.IsTexture() {
		label = "."
	}
	if len(label) >= width {
		return label[:width]
	}
	return label + strings.Repeat(" ", width-len(label))
}

func styleFor(cell gamemap.Cell) color.Style {
	if cell.IsTexture() {
		return textureStyles[cell.Texture%len(textureStyles)]
	}
	return kindStyles[cell.Kind]
}

// colorOutput reports whether out is a terminal.
func colorOutput(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// cellWidth is 2 unless out is a terminal too narrow for that.
func cellWidth(out io.Writer, cols int) int {
	f, ok := out.(*os.File)
	if !ok {
		return 2
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w >= cols*2 {
		return 2
	}
	return 1
}
