package cmd

import (
	"fmt"
	"strconv"

	"github.com/msto63/formatkit/formatx"
	"github.com/msto63/formatkit/profile"
	"github.com/spf13/cobra"
)

var (
	floatStyle     string
	floatPrecision int
	floatWidth     int
	floatZero      bool
	floatPlus      bool
	floatUpper     bool
)

var floatCmd = &cobra.Command{
	Use:   "float [zahlen...]",
	Short: "Gleitkommazahlen formatieren",
	Long: `Formatiert Gleitkommazahlen in Festkomma-, wissenschaftlicher oder
kuerzester Rundreise-Darstellung.

Stile:
  fixed     - Festkomma mit fester Nachkommastellenzahl
  sci       - wissenschaftliche Notation (Mantisse und Exponent)
  shortest  - kuerzeste Darstellung, die den Wert exakt erhaelt

Beispiele:
  fmtool float 3.14159
  fmtool float --style fixed --precision 2 --plus 3.14159
  fmtool float --style sci --upper 0.0625
  fmtool float --profile sci.yaml 125.0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFloat,
}

func init() {
	rootCmd.AddCommand(floatCmd)

	floatCmd.Flags().StringVarP(&floatStyle, "style", "s", "shortest", "Stil (fixed, sci oder shortest)")
	floatCmd.Flags().IntVarP(&floatPrecision, "precision", "p", 6, "Nachkommastellen")
	floatCmd.Flags().IntVarP(&floatWidth, "width", "w", 0, "Mindestbreite")
	floatCmd.Flags().BoolVar(&floatZero, "zero", false, "Mit Nullen auffuellen")
	floatCmd.Flags().BoolVar(&floatPlus, "plus", false, "Pluszeichen anzeigen")
	floatCmd.Flags().BoolVar(&floatUpper, "upper", false, "Grossbuchstaben (Exponent, Sonderwerte)")
}

func runFloat(cmd *cobra.Command, args []string) error {
	f, err := floatFormatter(cmd)
	if err != nil {
		printError("Formatter aufbauen fehlgeschlagen", err)
		return err
	}

	for _, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			printError("ungueltige Gleitkommazahl", err)
			return err
		}
		fmt.Println(formatx.FormatToString(x, f))
	}
	return nil
}

func floatFormatter(cmd *cobra.Command) (formatx.Formatter[float64], error) {
	style := floatStyle
	precision := floatPrecision
	width := floatWidth
	var flags formatx.Flags

	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return nil, err
		}
		if !cmd.Flags().Changed("style") {
			switch p.Kind {
			case profile.KindFixed, profile.KindSci, profile.KindShortest:
				style = p.Kind
			}
		}
		if !cmd.Flags().Changed("precision") {
			precision = p.Precision
		}
		if !cmd.Flags().Changed("width") {
			width = p.Width
		}
		flags, err = p.ParsedFlags()
		if err != nil {
			return nil, err
		}
	}
	if floatZero {
		flags |= formatx.PadZeros
	}
	if floatPlus {
		flags |= formatx.PlusSign
	}
	if floatUpper {
		flags |= formatx.UpperCase
	}

	switch style {
	case "fixed":
		return formatx.Fixed().WithPrecision(precision).WithWidth(width).WithFlags(flags), nil
	case "sci":
		return formatx.Sci().WithPrecision(precision).WithWidth(width).WithFlags(flags), nil
	case "shortest":
		return formatx.Shortest(), nil
	default:
		return nil, fmt.Errorf("unbekannter Stil %q (erlaubt: fixed, sci, shortest)", style)
	}
}
