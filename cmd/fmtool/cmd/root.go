package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	profilePath string
)

var rootCmd = &cobra.Command{
	Use:   "fmtool",
	Short: "formatkit - Zahlenformatierung von der Kommandozeile",
	Long: `fmtool formatiert Zahlen mit der formatkit-Bibliothek.

Befehle:
  int      - Ganzzahlen formatieren (oktal, dezimal, hexadezimal)
  float    - Gleitkommazahlen formatieren (fixed, sci, shortest)
  range    - Wertebereiche aufzaehlen und formatieren
  version  - Version anzeigen`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Format-Profil (TOML oder YAML)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
