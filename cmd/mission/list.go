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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/command"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
)

func NewListCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Warning("Failed to read config file: %v", err)
	}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			missions, err := apiClient.Missions()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tFRAMES\tTRUNCATED\tPARSED")
			for _, m := range missions {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
					m.Name, m.FileSize, m.Diag.TotalFrames, m.Diag.TruncatedFrames,
					m.ParsedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}
	return cmd
}
