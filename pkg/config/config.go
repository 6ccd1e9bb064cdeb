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

package config

import (
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

type Config struct {
	LogLevel string `json:"logLevel,omitempty"`
	// IP is the address the API server binds and the API client connects to
	IP string `json:"ip,omitempty"`
	// DBPath is the location of the bbolt mission archive
	DBPath string `json:"dbPath,omitempty"`
	// ReferenceSeries is the record type code whose reconstructed clock is
	// interpolated onto clockless records
	ReferenceSeries uint16 `json:"referenceSeries,omitempty"`
	// DropRaw discards raw payload bytes once a record type is decoded,
	// halving peak memory on large logs
	DropRaw bool `json:"dropRaw,omitempty"`

	filepath string
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = os.WriteFile(c.filepath, data, 0644)
	if err != nil {
		return err
	}

	return nil
}

// Load reads the config file if it exists. A missing file is not an error,
// the defaults stay in place.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, DBFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:        DefaultLogLevel,
		IP:              DefaultIP,
		DBPath:          DefaultDBPath(),
		ReferenceSeries: DefaultReferenceSeries,
		filepath:        DefaultConfigPath(),
	}
}
