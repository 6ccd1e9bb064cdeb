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

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/rlf"
)

func testStore(t *testing.T) *MissionStore {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "missions.db")
	s, err := NewMissionStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func digest(name string) *StoredMission {
	return &StoredMission{
		Name:     name,
		FileSize: 1024,
		ParsedAt: time.Date(2013, 9, 6, 8, 0, 0, 0, time.UTC),
		Summary: map[string]*rlf.TypeSummary{
			"Navigation": {TypeHex: "0x044e", Count: 3, PayloadBytes: 46, Decoded: true},
		},
		Diag: rlf.Diagnostics{TotalFrames: 3},
	}
}

func TestPutGet(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Put(digest("130906")))

	m, err := s.Get("130906")
	require.NoError(t, err)
	require.Equal(t, "130906", m.Name)
	require.Equal(t, 1024, m.FileSize)
	require.Equal(t, 3, m.Diag.TotalFrames)
	require.Equal(t, 3, m.Summary["Navigation"].Count)
}

func TestGetMissing(t *testing.T) {
	s := testStore(t)
	_, err := s.Get("nope")
	require.Error(t, err)
	require.IsType(t, ErrMissionNotFound{}, err)
}

func TestList(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Put(digest("130907")))
	require.NoError(t, s.Put(digest("130906")))

	missions, err := s.List()
	require.NoError(t, err)
	require.Len(t, missions, 2)
	// bbolt iterates keys in byte order
	require.Equal(t, "130906", missions[0].Name)
	require.Equal(t, "130907", missions[1].Name)
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Put(digest("130906")))
	require.NoError(t, s.Delete("130906"))
	_, err := s.Get("130906")
	require.Error(t, err)

	// deleting a missing mission is fine
	require.NoError(t, s.Delete("130906"))
}
