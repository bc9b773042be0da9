package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/schema"
)

const dirPerm = 0o755

// docFormat describes one output of gen-docs.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	render     func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		render: func(root *cobra.Command, dir string) error {
			now := time.Now()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "FOCUSMODE",
				Section: "1",
				Source:  "focusmode " + buildInfo.Version,
				Manual:  "focusmode manual",
				Date:    &now,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "docs", nil },
		render:     doc.GenMarkdownTree,
	},
}

var (
	genDocsOutputDir   string
	genDocsFormat      string
	genDocsWithSchemas bool
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Write man pages or markdown for every focusmode command",
	Long: `Render the focusmode command tree as documentation.

The default is one man page per command in $XDG_DATA_HOME/man/man1, so
"man focusmode-browse" works after mandb has run. With --format markdown
the pages go to ./docs. --schemas also writes the config, settings and
message JSON schemas next to the pages.`,
	Example: `  focusmode gen-docs
  focusmode gen-docs --format markdown --schemas
  focusmode gen-docs -o ./man`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory (default depends on --format)")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "man or markdown")
	genDocsCmd.Flags().BoolVar(&genDocsWithSchemas, "schemas", false, "also write the JSON schemas")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	files, err := writeDocs(rootCmd, genDocsFormat, genDocsOutputDir, genDocsWithSchemas)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Println(f)
	}
	if genDocsFormat == "man" {
		fmt.Println("run mandb if man cannot find the new pages")
	}
	return nil
}

// writeDocs renders root in the named format and returns the files written.
func writeDocs(root *cobra.Command, format, dir string, withSchemas bool) ([]string, error) {
	f, ok := docFormats[format]
	if !ok {
		return nil, fmt.Errorf("unknown doc format %q (want man or markdown)", format)
	}

	if dir == "" {
		d, err := f.defaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolve %s directory: %w", format, err)
		}
		dir = d
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	root.DisableAutoGenTag = true
	if err := f.render(root, dir); err != nil {
		return nil, fmt.Errorf("render %s docs: %w", format, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+f.ext))
	if err != nil {
		return nil, err
	}

	if withSchemas {
		for _, name := range schema.Names() {
			path, err := schema.Write(dir, name)
			if err != nil {
				return nil, err
			}
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}
