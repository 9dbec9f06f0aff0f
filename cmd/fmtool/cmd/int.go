package cmd

import (
	"fmt"
	"strconv"

	"github.com/msto63/formatkit/formatx"
	"github.com/msto63/formatkit/profile"
	"github.com/spf13/cobra"
)

var (
	intBase  int
	intWidth int
	intZero  bool
	intPlus  bool
	intUpper bool
)

var intCmd = &cobra.Command{
	Use:   "int [zahlen...]",
	Short: "Ganzzahlen formatieren",
	Long: `Formatiert Ganzzahlen in Oktal-, Dezimal- oder Hexadezimaldarstellung.

Beispiele:
  fmtool int 255
  fmtool int --base 16 --upper --width 8 --zero 255
  fmtool int --plus 42 -- -42
  fmtool int --profile hex.toml 255 4096`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInt,
}

func init() {
	rootCmd.AddCommand(intCmd)

	intCmd.Flags().IntVarP(&intBase, "base", "b", 10, "Zahlenbasis (8, 10 oder 16)")
	intCmd.Flags().IntVarP(&intWidth, "width", "w", 0, "Mindestbreite")
	intCmd.Flags().BoolVar(&intZero, "zero", false, "Mit Nullen auffuellen")
	intCmd.Flags().BoolVar(&intPlus, "plus", false, "Pluszeichen anzeigen")
	intCmd.Flags().BoolVar(&intUpper, "upper", false, "Grossbuchstaben (Hexadezimal)")
}

func runInt(cmd *cobra.Command, args []string) error {
	f, err := intFormatter(cmd)
	if err != nil {
		printError("Formatter aufbauen fehlgeschlagen", err)
		return err
	}

	for _, arg := range args {
		x, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			printError("ungueltige Ganzzahl", err)
			return err
		}
		fmt.Println(formatx.FormatToString(x, f))
	}
	return nil
}

// intFormatter baut den Formatter aus Profil und Flags auf.
// Explizit gesetzte Flags haben Vorrang vor dem Profil.
func intFormatter(cmd *cobra.Command) (formatx.IntFormatter, error) {
	f := formatx.Dec()
	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return f, err
		}
		f, err = p.IntFormatter()
		if err != nil {
			return f, err
		}
	}
	if cmd.Flags().Changed("base") {
		if intBase != 8 && intBase != 10 && intBase != 16 {
			return f, fmt.Errorf("ungueltige Basis %d (erlaubt: 8, 10, 16)", intBase)
		}
		f = f.WithBase(intBase)
	}
	if cmd.Flags().Changed("width") {
		f = f.WithWidth(intWidth)
	}
	if intZero {
		f = f.Or(formatx.PadZeros)
	}
	if intPlus {
		f = f.Or(formatx.PlusSign)
	}
	if intUpper {
		f = f.Or(formatx.UpperCase)
	}
	return f, nil
}
