package cli

import (
	"github.com/spf13/cobra"

	"github.com/mholloway/capwords/internal/words"
)

// demoItems is the canonical demonstration list: two words of mixed case,
// two absent items, a single word, and an empty string.
var demoItems = []words.Item{
	words.Some("hellO wOrlD"),
	words.None(),
	words.Some("fRom"),
	words.None(),
	words.Some("kOtlin"),
	words.Some(""),
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration list",
	Long:  "Capitalizes a fixed list of sample items, skipping the absent and empty ones, and prints the result. Expected output: [Hello, World, From, Kotlin] with three skip notices on stderr.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderItems(cmd.Context(), demoItems)
	},
}
