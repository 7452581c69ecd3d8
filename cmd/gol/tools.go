package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"lifegrid/internal/render"
	"lifegrid/pkg/grid"
	"lifegrid/pkg/zoo"
)

func cmdShow(e *env, args []string) error {
	fs := newFlagSet(e, "show", "")
	var src source
	src.bind(fs, e, false)
	if err := parse(fs, args); err != nil {
		return err
	}
	g, err := src.load(e, false)
	if err != nil {
		return err
	}
	return printBoard(e.stdout, g)
}

func cmdConvert(e *env, args []string) error {
	fs := newFlagSet(e, "convert", "<in> <out>")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return errUsage
	}
	g, err := zoo.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	return zoo.Save(fs.Arg(1), g)
}

func cmdPNG(e *env, args []string) error {
	fs := newFlagSet(e, "png", "")
	var src source
	src.bind(fs, e, false)
	out := fs.String("out", "", "PNG file to write")
	scale := fs.Int("scale", e.settings.Scale, "pixels per cell")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *out == "" {
		fs.Usage()
		return errUsage
	}
	g, err := src.load(e, false)
	if err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, g, *scale, render.DefaultPalette()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func cmdTransform(e *env, args []string) error {
	fs := newFlagSet(e, "transform", "")
	var src source
	src.bind(fs, e, false)
	crop := fs.String("crop", "", "keep the window x0,y0,x1,y1 (exclusive upper bounds)")
	rotate := fs.Int("rotate", 0, "rotate clockwise by k quarter turns")
	resize := fs.String("resize", "", "resize to WxH, keeping the top-left corner")
	out := fs.String("out", "", "write the result to this .gol or .bgol file instead of printing it")
	if err := parse(fs, args); err != nil {
		return err
	}
	g, err := src.load(e, false)
	if err != nil {
		return err
	}
	if *crop != "" {
		v, err := ints(*crop, ",", 4)
		if err != nil {
			return fmt.Errorf("-crop: %w", err)
		}
		if g, err = g.Crop(v[0], v[1], v[2], v[3]); err != nil {
			return err
		}
	}
	if *rotate != 0 {
		g = g.Rotate(*rotate)
	}
	if *resize != "" {
		v, err := ints(strings.ToLower(*resize), "x", 2)
		if err != nil {
			return fmt.Errorf("-resize: %w", err)
		}
		if err := g.Resize(v[0], v[1]); err != nil {
			return err
		}
	}
	if *out != "" {
		return zoo.Save(*out, g)
	}
	return printBoard(e.stdout, g)
}

func cmdPatterns(e *env, args []string) error {
	fs := newFlagSet(e, "patterns", "")
	art := fs.Bool("art", false, "print each pattern")
	if err := parse(fs, args); err != nil {
		return err
	}
	for _, name := range zoo.Names() {
		p, err := zoo.Pattern(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%-8s %dx%d alive=%d\n", name, p.Width(), p.Height(), p.AliveCount())
		if *art {
			p.WriteTo(e.stdout)
		}
	}
	return nil
}

func ints(s, sep string, n int) ([]int, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: expected %d values in %q", grid.ErrInvalidArgument, n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", grid.ErrInvalidArgument, p)
		}
		out[i] = v
	}
	return out, nil
}
