/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package parse

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/rlf"
)

const (
	ReferenceOptionName = "reference"
	DropRawOptionName   = "drop-raw"
	SeriesOptionName    = "series"
)

func NewCommand() *cobra.Command {
	var reference string
	var series string
	var dropRaw bool
	cfg := config.NewDefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Warning("Failed to read config file: %v", err)
	}
	cmd := &cobra.Command{
		Use:   "parse <file.RLF>",
		Short: "Decode a mission log and print its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &rlf.Options{
				ReferenceSeries: cfg.ReferenceSeries,
				DropRaw:         dropRaw || cfg.DropRaw,
			}
			if reference != "" {
				code, err := strconv.ParseUint(reference, 0, 16)
				if err != nil {
					return err
				}
				opts.ReferenceSeries = uint16(code)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ds := rlf.Parse(data, opts)

			out := cmd.OutOrStdout()
			if series != "" {
				s, ok := ds.Series[series]
				if !ok {
					return fmt.Errorf("no series named %q in %s", series, args[0])
				}
				printSeries(out, s)
				return nil
			}
			printSummary(out, ds)
			return nil
		},
	}
	cmd.Flags().StringVar(&reference, ReferenceOptionName, "", "Reference record type for positional timestamps. E.g. 0x044e")
	cmd.Flags().BoolVar(&dropRaw, DropRawOptionName, false, "Discard raw payloads after decoding")
	cmd.Flags().StringVar(&series, SeriesOptionName, "", "Print field statistics of one series instead of the summary")
	return cmd
}

func printSummary(out io.Writer, ds *rlf.Dataset) {
	names := make([]string, 0, len(ds.Summary))
	for name := range ds.Summary {
		names = append(names, name)
	}
	// busiest types first
	sort.Slice(names, func(i, j int) bool {
		a, b := ds.Summary[names[i]], ds.Summary[names[j]]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return names[i] < names[j]
	})

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tFRAMES\tSIZE\tDECODED\tSKIPPED")
	for _, name := range names {
		sum := ds.Summary[name]
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%d\n",
			sum.TypeHex, name, sum.Count, sum.PayloadBytes, sum.Decoded, sum.Skipped)
	}
	w.Flush()

	fmt.Fprintf(out, "\nFrames: %d, truncated: %d\n", ds.Diag.TotalFrames, ds.Diag.TruncatedFrames)
	if len(ds.Diag.UnknownTypes) > 0 {
		fmt.Fprintf(out, "Unknown types: %s\n", strings.Join(ds.Diag.UnknownTypes, ", "))
	}
	if len(ds.Diag.Degraded) > 0 {
		fmt.Fprintf(out, "Unstamped (reference series missing): %s\n", strings.Join(ds.Diag.Degraded, ", "))
	}
}

func printSeries(out io.Writer, s *rlf.Series) {
	fmt.Fprintf(out, "%s: %d samples", s.Name, s.Len())
	if len(s.T) > 0 {
		fmt.Fprintf(out, ", %.3f hours", s.T[len(s.T)-1])
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tMIN\tMAX\tMEAN\tVALID")
	for _, field := range s.Order {
		stats, ok := s.Stats(field)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%d\n", field, stats.Min, stats.Max, stats.Mean, stats.Count)
	}
	w.Flush()
}
