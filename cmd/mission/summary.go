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

package mission

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/command"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
)

func NewSummaryCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Warning("Failed to read config file: %v", err)
	}
	cmd := &cobra.Command{
		Use:   "summary <mission>",
		Short: "Print one mission's record type summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			m, err := apiClient.Summary(args[0])
			if err != nil {
				return err
			}
			names := make([]string, 0, len(m.Summary))
			for name := range m.Summary {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				a, b := m.Summary[names[i]], m.Summary[names[j]]
				if a.Count != b.Count {
					return a.Count > b.Count
				}
				return names[i] < names[j]
			})
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tNAME\tFRAMES\tSIZE\tDECODED\tSKIPPED")
			for _, name := range names {
				sum := m.Summary[name]
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%d\n",
					sum.TypeHex, name, sum.Count, sum.PayloadBytes, sum.Decoded, sum.Skipped)
			}
			return w.Flush()
		},
	}
	return cmd
}
