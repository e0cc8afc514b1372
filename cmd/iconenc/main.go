package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/icon-encoder/icns"
	"github.com/wippyai/icon-encoder/ico"
	"github.com/wippyai/icon-encoder/png"
)

const version = "1.0.0"

const (
	kindICO  = "ico"
	kindICNS = "icns"
)

type options struct {
	kind string
	dark string
	raw  bool
	png  bool
	bmp  bool
	toc  bool
}

// job is one input PNG and how it will be stored.
type job struct {
	path      string
	data      []byte
	icnsType  icns.Type
	ihdr      png.IHDR
	icoFormat ico.Format
}

var sizeNameRe = regexp.MustCompile(`(?i)(\d+x\d+(@2x)?)\.png$`)

func main() {
	var (
		raw         = flag.Bool("raw", false, "Prefer raw PNG data in the icon")
		forcePNG    = flag.Bool("png", false, "Store every ICO entry as PNG")
		forceBMP    = flag.Bool("bmp", false, "Store every ICO entry as BMP")
		toc         = flag.Bool("toc", false, "Include a TOC entry in ICNS output")
		dark        = flag.String("dark", "", "Embed this ICNS file as the dark-mode variant")
		kind        = flag.String("kind", "", "Output kind (ico or icns); inferred from the output extension")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("verbose", false, "Log encoder activity to stderr")
		showVersion = flag.Bool("version", false, "Show the current version")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()
	png.SetLogger(logger.Named("png"))
	icns.SetLogger(logger.Named("icns"))
	ico.SetLogger(logger.Named("ico"))

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	if *forcePNG && *forceBMP {
		fmt.Fprintln(os.Stderr, "Error: -png and -bmp are mutually exclusive")
		os.Exit(1)
	}

	opts := options{
		kind: *kind,
		dark: *dark,
		raw:  *raw,
		png:  *forcePNG,
		bmp:  *forceBMP,
		toc:  *toc,
	}

	out, inputs := args[0], args[1:]
	var err error
	if *interactive {
		err = runInteractive(out, inputs, opts)
	} else {
		err = run(out, inputs, opts, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: iconenc [options] (icon.ico | icon.icns | -) pngs...")
	fmt.Fprintln(os.Stderr, "       iconenc -i (icon.ico | icon.icns) pngs...  (interactive mode)")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func run(out string, inputs []string, opts options, logger *zap.Logger) error {
	kind, err := outputKind(out, opts.kind)
	if err != nil {
		return err
	}

	jobs, err := loadJobs(kind, inputs, opts)
	if err != nil {
		return err
	}

	data, err := encode(kind, jobs, opts)
	if err != nil {
		return err
	}

	if err := writeOutput(out, data); err != nil {
		return err
	}
	logger.Info("icon written",
		zap.String("path", out),
		zap.String("kind", kind),
		zap.Int("entries", len(jobs)),
		zap.Int("size", len(data)))
	return nil
}

func outputKind(out, explicit string) (string, error) {
	if explicit != "" {
		k := strings.ToLower(explicit)
		if k != kindICO && k != kindICNS {
			return "", fmt.Errorf("unknown kind %q", explicit)
		}
		return k, nil
	}
	switch strings.ToLower(filepath.Ext(out)) {
	case ".ico":
		return kindICO, nil
	case ".icns":
		return kindICNS, nil
	}
	return "", fmt.Errorf("cannot infer output kind from %q; use -kind", out)
}

func loadJobs(kind string, inputs []string, opts options) ([]job, error) {
	jobs := make([]job, 0, len(inputs))
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		ihdr, err := png.PeekIHDR(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		j := job{path: path, data: data, ihdr: ihdr, icoFormat: icoFormat(opts)}
		if kind == kindICNS {
			t, err := icnsTypeForPath(path)
			if err != nil {
				return nil, err
			}
			j.icnsType = t
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func icoFormat(opts options) ico.Format {
	switch {
	case opts.png:
		return ico.FormatPNG
	case opts.bmp:
		return ico.FormatBMP
	}
	return ico.FormatAuto
}

func icnsTypeForPath(path string) (icns.Type, error) {
	m := sizeNameRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return "", fmt.Errorf("unknown size: %s", path)
	}
	t, ok := icns.TypeForSizeName(strings.ToLower(m[1]))
	if !ok {
		return "", fmt.Errorf("unknown size: %s", path)
	}
	return t, nil
}

func encode(kind string, jobs []job, opts options) ([]byte, error) {
	if kind == kindICO {
		enc := ico.New()
		for _, j := range jobs {
			if err := enc.AddFromPNG(j.data, j.icoFormat, opts.raw); err != nil {
				return nil, fmt.Errorf("%s: %w", j.path, err)
			}
		}
		return enc.Encode(), nil
	}

	enc := icns.New(icns.WithTOC(opts.toc))
	for _, j := range jobs {
		if err := enc.AddFromPNG(j.data, []icns.Type{j.icnsType}, opts.raw); err != nil {
			return nil, fmt.Errorf("%s: %w", j.path, err)
		}
	}
	if opts.dark != "" {
		data, err := os.ReadFile(opts.dark)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", opts.dark, err)
		}
		if err := enc.AddDarkICNS(data); err != nil {
			return nil, fmt.Errorf("%s: %w", opts.dark, err)
		}
	}
	return enc.Encode(), nil
}

var errTerminal = errors.New("refusing to write binary icon data to a terminal")

func writeOutput(out string, data []byte) error {
	if out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
