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
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.filepath = filepath.Join(t.TempDir(), "config")
	return cfg
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, cfg.Load())
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadMalformedFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.filepath, []byte("logLevel: [not: a: string"), 0644))
	require.Error(t, cfg.Load())
}

func TestPersistLoadRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "debug"
	cfg.ReferenceSeries = 0x041d
	cfg.DropRaw = true
	require.NoError(t, cfg.Persist(false))

	loaded := NewDefaultConfig()
	loaded.filepath = cfg.filepath
	require.NoError(t, loaded.Load())
	require.Equal(t, "debug", loaded.LogLevel)
	require.Equal(t, uint16(0x041d), loaded.ReferenceSeries)
	require.True(t, loaded.DropRaw)
}

func TestPersistRefusesOverwrite(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, cfg.Persist(false))
	err := cfg.Persist(false)
	require.Error(t, err)
	require.IsType(t, ErrConfigFileExists{}, err)
	require.NoError(t, cfg.Persist(true))
}
