package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/glguy/prettyprinter/pkg/doc"
	"github.com/glguy/prettyprinter/pkg/render"
)

var (
	fmtWidth   int
	fmtRibbon  float64
	fmtPolicy  string
	fmtColor   bool
	fmtInPlace bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [glob...]",
	Short: "Format JSON/YAML files (or stdin) to the target width",
	Long: `Format reads each file matching the given glob patterns (or stdin when
no patterns are given), parses it as YAML — which covers JSON too — and
prints it re-laid-out at the target width.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := layoutOptions()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			out, err := formatReader(os.Stdin, opts, fmtColor)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		files, err := expandGlobs(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no files match %v", args)
		}

		for _, path := range files {
			if err := formatFile(path, opts); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().IntVarP(&fmtWidth, "width", "w", 80, "Target page width in columns")
	fmtCmd.Flags().Float64Var(&fmtRibbon, "ribbon", 1.0, "Ribbon fraction in (0,1]")
	fmtCmd.Flags().StringVar(&fmtPolicy, "policy", "pretty", "Layout policy: pretty, smart or compact")
	fmtCmd.Flags().BoolVar(&fmtColor, "color", false, "Colorize output (stdout only)")
	fmtCmd.Flags().BoolVar(&fmtInPlace, "write", false, "Rewrite files in place instead of printing")
}

func layoutOptions() (*doc.Options, error) {
	policy := doc.PolicyPretty
	switch fmtPolicy {
	case "pretty":
	case "smart":
		policy = doc.PolicySmart
	case "compact":
		policy = doc.PolicyCompact
	default:
		return nil, fmt.Errorf("unknown policy %q", fmtPolicy)
	}
	return doc.NewOptions(
		doc.WithMaxWidth(fmtWidth),
		doc.WithRibbon(fmtRibbon),
		doc.WithPolicy(policy),
	)
}

// expandGlobs resolves doublestar patterns against the working directory.
// A pattern without meta characters is taken as a literal path.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if matches == nil && !hasGlobMeta(p) {
			matches = []string{p}
		}
		for _, m := range matches {
			m = filepath.Clean(m)
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// hasGlobMeta reports whether p uses glob syntax.
func hasGlobMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

func formatReader(r io.Reader, opts *doc.Options, color bool) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return formatBytes(data, opts, color)
}

func formatBytes(data []byte, opts *doc.Options, color bool) (string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	d, err := buildNode(&node)
	if err != nil {
		return "", err
	}
	// One traversal per layout call; fuse once up front so repeated
	// layouts of big documents walk fewer nodes.
	d = doc.Fuse(doc.Shallow, d)

	s := doc.Layout(d, opts)
	if !color {
		return render.String(s)
	}

	var sb strings.Builder
	if err := render.NewTerm[tag](&sb, styles).Render(s); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatFile(path string, opts *doc.Options) error {
	slog.Debug("formatting", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// --color only makes sense on a terminal, never for --write.
	color := fmtColor && !fmtInPlace
	out, err := formatBytes(data, opts, color)
	if err != nil {
		return err
	}

	if fmtInPlace {
		return os.WriteFile(path, []byte(out+"\n"), 0o644)
	}
	fmt.Println(out)
	return nil
}
