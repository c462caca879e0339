package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mholloway/capwords/internal/config"
	"github.com/mholloway/capwords/internal/display"
	"github.com/mholloway/capwords/internal/input"
	"github.com/mholloway/capwords/internal/logging"
	"github.com/mholloway/capwords/internal/words"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	jsonOutput bool
	noColor    bool
	verbose    bool
	quiet      bool
	formatFlag string
	filePath   string
	nullToken  string
)

var rootCmd = &cobra.Command{
	Use:          "capwords [item...]",
	Short:        "Normalize lists of optional strings into capitalized words",
	Long:         "Splits each item into whitespace-separated words, lowercases them, re-capitalizes the first letter of each word, and prints the flattened result. Items equal to the null token (or the empty string) are skipped with a notice on stderr.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose && quiet {
			verbose = false
		}
		l := newConfiguredLogger()
		ctx := logging.WithLogger(cmd.Context(), l)
		cmd.SetContext(ctx)

		// Load config from disk so malformed files surface a warning.
		if _, err := config.Init(); err != nil {
			l.Warn("config file is malformed, using defaults", "err", err)
		}
	},
	RunE: runCapitalize,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: "+strings.Join(config.Formats, ", "))
	rootCmd.PersistentFlags().StringVar(&nullToken, "null-token", "", "Literal argument or line treated as an absent item")
	rootCmd.Flags().StringVar(&filePath, "file", "", "Read items from a file (.yaml, .json, or plain text)")
	rootCmd.Flags().Bool("version", false, "Show version and exit")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Commands access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// Swappable for tests; the real checks ask the OS about the fds.
var (
	stdoutIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

func runCapitalize(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.Flags().GetBool("version"); v {
		out("capwords %s\n", version)
		return nil
	}

	items, found, err := gatherItems(args)
	if err != nil {
		return err
	}
	if !found {
		if !jsonOutput && !quiet {
			showFirstRunMessage()
		}
		return nil
	}

	return renderItems(cmd.Context(), items)
}

// gatherItems resolves the item source: --file, then "-" or piped stdin,
// then positional arguments. found is false when no source was given.
func gatherItems(args []string) (items []words.Item, found bool, err error) {
	token := resolveNullToken()

	if filePath != "" {
		items, err = input.LoadFile(filePath, token)
		return items, true, err
	}

	if len(args) == 1 && args[0] == "-" {
		items, err = input.ReadLines(inReader, token)
		return items, true, err
	}

	if len(args) > 0 {
		return input.ParseArgs(args, token), true, nil
	}

	if !stdinIsTerminal() {
		items, err = input.ReadLines(inReader, token)
		return items, true, err
	}

	return nil, false, nil
}

func renderItems(ctx context.Context, items []words.Item) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	annotated := words.Annotate(ctx, items)
	ws := make([]string, len(annotated))
	for i, w := range annotated {
		ws[i] = w.Text
	}

	switch format {
	case "json":
		return display.OutputJSON(outWriter, display.NewResultJSON(ws, words.SkipCount(items), len(items)))
	case "lines":
		out("%s", display.RenderLines(ws))
	case "table":
		outln(renderWordTable(annotated))
	default:
		outln(display.RenderList(ws))
	}
	return nil
}

var wordTableHeaders = []string{"Word", "Item", "Position"}

func renderWordTable(annotated []words.Word) string {
	rows := make([][]string, len(annotated))
	for i, w := range annotated {
		rows[i] = []string{w.Text, strconv.Itoa(w.Item), strconv.Itoa(i)}
	}

	opts := display.TableOptions{NoColor: noColor}
	rendered := display.NewTableWithOptions(wordTableHeaders, rows, opts)

	// Re-render width-capped only when the natural table overflows.
	if stdoutIsTerminal() {
		if w := display.TerminalWidth(); lipgloss.Width(rendered) > w {
			opts.MaxWidth = w
			rendered = display.NewTableWithOptions(wordTableHeaders, rows, opts)
		}
	}
	return rendered
}

func resolveFormat() (string, error) {
	if formatFlag != "" {
		if !config.ValidFormat(formatFlag) {
			return "", fmt.Errorf("unknown format %q (valid: %s)", formatFlag, strings.Join(config.Formats, ", "))
		}
		return formatFlag, nil
	}
	if jsonOutput {
		return "json", nil
	}
	return config.Get().Output.Format, nil
}

func resolveNullToken() string {
	if nullToken != "" {
		return nullToken
	}
	return config.Get().Input.NullToken
}

func showFirstRunMessage() {
	outln()
	outln("Welcome to capwords!")
	outln("Normalize lists of optional strings into capitalized words.")
	outln()
	outln("Try it with:")
	outln("  capwords demo")
	outln("  capwords \"hellO wOrlD\" null kOtlin")
	outln("  echo \"hellO wOrlD\" | capwords")
	outln()
}
