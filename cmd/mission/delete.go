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
	"github.com/spf13/cobra"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/command"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
)

func NewDeleteCommand() *cobra.Command {
	cfg := config.NewDefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Warning("Failed to read config file: %v", err)
	}
	cmd := &cobra.Command{
		Use:   "delete <mission>",
		Short: "Delete one mission from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			return apiClient.Delete(args[0])
		},
	}
	return cmd
}
