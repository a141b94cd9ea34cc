package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"kantine-klima/internal/estimator"
	"kantine-klima/internal/format"
)

// NewEstimateCmd reads a calculation input and prints the estimate.
func NewEstimateCmd() *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the annual CO2e footprint of a canteen",
		Example: `  # defaults (150 employees, 240 days)
  klimacli estimate

  # input file, absent fields keep their defaults
  klimacli estimate -f canteen.yaml --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := loadInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if err := in.Validate(); err != nil {
				return err
			}

			res := estimator.Estimate(in)

			switch resolveOutput(output, cmd.OutOrStdout()) {
			case outputJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			case outputText:
				renderText(cmd.OutOrStdout(), in, res)
				return nil
			default:
				return fmt.Errorf("unknown output %q, want auto, text or json", output)
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (.yaml, .yml or .json), - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", outputAuto, "output format: auto, text or json")

	return cmd
}

// loadInput decodes the file on top of the default input.
func loadInput(stdin io.Reader, path string) (estimator.Input, error) {
	in := estimator.DefaultInput()
	if path == "" {
		return in, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return in, fmt.Errorf("read input: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &in)
	default:
		// yaml is a superset of json, stdin goes here too
		err = yaml.Unmarshal(data, &in)
	}
	if err != nil {
		return in, fmt.Errorf("decode input %s: %w", path, err)
	}

	return in, nil
}

// resolveOutput turns auto into text on a terminal and json otherwise.
func resolveOutput(output string, w io.Writer) string {
	if output != outputAuto {
		return output
	}
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return outputText
	}
	return outputJSON
}

func renderText(w io.Writer, in estimator.Input, res estimator.Result) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Fprintln(w, "Klimaaftryk")
	fmt.Fprintf(w, "  Medarbejdere:     %s (%s %% til stede, %d dage)\n",
		format.Int(int64(in.Employees)), format.Float(in.AttendanceRate*100, 0), in.OperatingDays)
	fmt.Fprintf(w, "  Måltider om året: %s\n", format.Int(int64(res.AnnualMeals)))
	fmt.Fprintf(w, "  Pr. måltid:       %s\n", format.Kg(res.PerMealKg))
	fmt.Fprintf(w, "  Årligt:           %s\n", yellow.Sprint(format.Tons(res.AnnualTons)))
	fmt.Fprintf(w, "  Madspild:         %s %% (faktor %s)\n", format.Float(res.TotalWastePercent, 1), format.Float(res.WasteMultiplier, 2))
	fmt.Fprintln(w)

	bold.Fprintln(w, "Fordeling pr. måltid")
	fmt.Fprintf(w, "  Rødt kød    %s\n", format.Kg(res.Breakdown.RedMeat))
	fmt.Fprintf(w, "  Lyst kød    %s\n", format.Kg(res.Breakdown.BrightMeat))
	fmt.Fprintf(w, "  Fisk        %s\n", format.Kg(res.Breakdown.Fish))
	fmt.Fprintf(w, "  Vegetarisk  %s\n", format.Kg(res.Breakdown.Vegetarian))
	fmt.Fprintf(w, "  Spild       %s\n", format.Kg(res.Breakdown.Waste))
	fmt.Fprintf(w, "  Tilbehør    %s\n", format.Kg(res.Sides.Total()))
	fmt.Fprintln(w)

	if len(res.Recommendations) == 0 {
		green.Fprintln(w, "Ingen anbefalinger, menuen er allerede klimavenlig.")
		return
	}

	bold.Fprintln(w, "Anbefalinger")
	for _, rec := range res.Recommendations {
		fmt.Fprintf(w, "  %d. %s  %s\n", rec.Priority, rec.Title, green.Sprintf("-%s", format.Tons(rec.AnnualSavingTons)))
		fmt.Fprintf(w, "     %s\n", rec.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Mulig besparelse ved halveret rødt kød: %s\n", format.DKK(res.EstimatedCostSavingsDKK))
	fmt.Fprintf(w, "Svarer til %s flyrejser til London eller %s træer.\n",
		format.Int(res.Equivalents.FlightsToLondon), format.Int(res.Equivalents.TreesPlanted))
}

// ExitCode maps command errors to process exit codes: 2 for bad input, 1 otherwise.
func ExitCode(err error) int {
	if errors.Is(err, estimator.ErrInvalidInput) {
		return 2
	}
	return 1
}
