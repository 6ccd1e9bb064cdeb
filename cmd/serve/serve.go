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

package serve

import (
	"context"

	"github.com/spf13/cobra"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/srv"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/store"
)

const (
	IPOptionName = "ip"
	DBOptionName = "db"
)

func NewCommand() *cobra.Command {
	var ip, dbPath string
	cfg := config.NewDefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Warning("Failed to read config file: %v", err)
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mission API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ip != "" {
				cfg.IP = ip
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			ctx := context.Background()
			st, err := store.NewMissionStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			server, err := srv.NewApiServer(ctx, cfg, st)
			if err != nil {
				return err
			}
			return server.Run()
		},
	}
	cmd.Flags().StringVar(&ip, IPOptionName, "", "Address to bind. E.g. 192.168.1.2")
	cmd.Flags().StringVar(&dbPath, DBOptionName, "", "Path of the mission database")
	return cmd
}
