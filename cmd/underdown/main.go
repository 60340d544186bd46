package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hldk/underdown/internal/config"
	"github.com/hldk/underdown/internal/markdown"
	"github.com/hldk/underdown/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "underdown [file]",
	Short: "Convert weak-markdown to HTML",
	Long: `Converts a restricted markdown dialect into HTML.

The dialect supports "#" headings, "* " unordered lists, paragraphs,
and underscore emphasis (_em_, __strong__, ___both___). Reads from a
file or from stdin, writes HTML to stdout or to --output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Live terminal preview",
	Long: `Opens a split-pane terminal UI: markdown on the left, converted
HTML on the right, re-rendered as you type. The file argument seeds
the editor.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(previewCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file (default stdout)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress parser diagnostics")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// readSource reads the markdown input from the file argument, or from
// stdin when no argument is given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(src), nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(src), nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}

	src, err := readSource(args)
	if err != nil {
		return err
	}

	p := markdown.NewParser()
	if config.GetQuiet() {
		p.SetDiagnostics(io.Discard)
	}

	html := p.Parse(src)

	dest := config.GetOutput()
	if dest == "" || dest == "-" {
		fmt.Println(html)
		return nil
	}

	if err := os.WriteFile(dest, []byte(html+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	var initial string
	if len(args) > 0 {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		initial = string(src)
	}

	return ui.Run(initial)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
