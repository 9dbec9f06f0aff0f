package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/formatkit/formatx"
	"github.com/msto63/formatkit/rangex"
	"github.com/spf13/cobra"
)

var (
	rangeSep string
)

var rangeCmd = &cobra.Command{
	Use:   "range FIRST LAST",
	Short: "Wertebereich aufzaehlen",
	Long: `Zaehlt den halboffenen Bereich [FIRST, LAST) auf und formatiert
jeden Wert. Liegt LAST vor FIRST, ist der Bereich leer.

Beispiele:
  fmtool range 0 10
  fmtool range --sep ", " 1 6
  fmtool range --base 16 --width 4 --zero 250 260`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

func init() {
	rootCmd.AddCommand(rangeCmd)

	rangeCmd.Flags().StringVar(&rangeSep, "sep", "\n", "Trennzeichen zwischen Werten")
	rangeCmd.Flags().IntVarP(&intBase, "base", "b", 10, "Zahlenbasis (8, 10 oder 16)")
	rangeCmd.Flags().IntVarP(&intWidth, "width", "w", 0, "Mindestbreite")
	rangeCmd.Flags().BoolVar(&intZero, "zero", false, "Mit Nullen auffuellen")
	rangeCmd.Flags().BoolVar(&intPlus, "plus", false, "Pluszeichen anzeigen")
	rangeCmd.Flags().BoolVar(&intUpper, "upper", false, "Grossbuchstaben (Hexadezimal)")
}

func runRange(cmd *cobra.Command, args []string) error {
	first, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil {
		printError("ungueltiger Bereichsanfang", err)
		return err
	}
	last, err := strconv.ParseInt(args[1], 0, 64)
	if err != nil {
		printError("ungueltiges Bereichsende", err)
		return err
	}

	f, err := intFormatter(cmd)
	if err != nil {
		printError("Formatter aufbauen fehlgeschlagen", err)
		return err
	}

	r := rangex.New(first, last)
	parts := make([]string, 0, r.Size())
	r.Do(func(v int64) bool {
		parts = append(parts, formatx.FormatToString(v, f))
		return true
	})
	fmt.Println(strings.Join(parts, rangeSep))
	return nil
}
