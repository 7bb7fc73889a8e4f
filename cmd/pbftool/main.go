package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"lcdgfx/font"
	"lcdgfx/font/bitmap"
	"lcdgfx/font/pbf"
	"lcdgfx/font/vector"
	"lcdgfx/font/xface"
	"lcdgfx/internal/buildinfo"
)

func main() {
	var (
		mode    = flag.String("mode", "build", "build|dump.")
		inPath  = flag.String("in", "", "Input .pbf file (dump mode).")
		outPath = flag.String("out", "", "Output file (build mode; dump defaults to stdout).")
		face    = flag.String("font", "6x8", "Built-in font to convert: 4x6|6x8|vector.")
		ttfPath = flag.String("ttf", "", "TrueType/OpenType file to convert instead of a built-in font.")
		size    = flag.Int("size", 16, "Pixel size for the vector or TrueType font.")
		version = flag.Int("version", 2, "Container version: 1|2.")
		hash    = flag.Int("hash", 64, "Hash table size (version 2).")
		cpBytes = flag.Int("cpbytes", 2, "Codepoint width in bytes, 2|4 (version 2).")
		showVer = flag.Bool("v", false, "Print the version and exit.")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(buildinfo.Line("pbftool"))
		return
	}

	switch strings.ToLower(*mode) {
	case "build":
		if *outPath == "" {
			fatalf("usage: pbftool -mode build -out font.pbf [-font 4x6|6x8|vector | -ttf file.ttf] [-size 16] [-version 2] [-hash 64] [-cpbytes 2]")
		}
		f, err := builtin(*face, *size)
		if err != nil {
			fatalf("%v", err)
		}
		opt := pbf.Options{
			Version:        uint8(*version),
			LineHeight:     uint8(f.Height()),
			Wildcard:       '?',
			HashTableSize:  *hash,
			CodepointBytes: *cpBytes,
		}
		if err := build(*outPath, f, opt); err != nil {
			fatalf("build: %v", err)
		}
	case "dump":
		if *inPath == "" {
			fatalf("usage: pbftool -mode dump -in font.pbf [-out dump.txt]")
		}
		if err := dump(*inPath, *outPath); err != nil {
			fatalf("dump: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func builtin(name string, size int) (font.Face, error) {
	switch name {
	case "4x6":
		return bitmap.Font4x6, nil
	case "6x8":
		return bitmap.Font6x8, nil
	case "vector":
		if size < 4 {
			return nil, fmt.Errorf("vector size %d", size)
		}
		return vector.Default.Face(size), nil
	}
	return nil, fmt.Errorf("unknown font %q", name)
}

func loadTTF(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := xface.Parse(data, float64(size))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// printable is space through tilde.
func printable() []rune {
	rs := make([]rune, 0, 95)
	for r := rune(' '); r <= '~'; r++ {
		rs = append(rs, r)
	}
	return rs
}

func build(path string, f font.Face, opt pbf.Options) error {
	src, err := pbf.FromFace(f, printable())
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	if err := pbf.Build(w, opt, src); err != nil {
		out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func dump(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	st, err := in.Stat()
	if err != nil {
		return err
	}
	f, err := pbf.Open(in, st.Size())
	if err != nil {
		return err
	}
	if outPath == "" {
		return f.Dump(os.Stdout)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	if err := f.Dump(w); err != nil {
		out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
