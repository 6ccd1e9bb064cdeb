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
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/rlf"
)

const (
	BucketName = "missions"
)

// StoredMission is the persisted digest of one parsed mission log:
// enough for listing and comparing missions without reparsing the
// binary file.
type StoredMission struct {
	Name     string                      `json:"name"`
	FileSize int                         `json:"file_size"`
	ParsedAt time.Time                   `json:"parsed_at"`
	Summary  map[string]*rlf.TypeSummary `json:"summary"`
	Diag     rlf.Diagnostics             `json:"diagnostics"`
}

type MissionStore struct {
	context.Context
	DB *bbolt.DB
}

// NewMissionStore opens the mission database and makes sure the
// missions bucket exists.
func NewMissionStore(ctx context.Context, cfg *config.Config) (*MissionStore, error) {
	db, err := bbolt.Open(cfg.DBPath, 0600, nil)
	if err != nil {
		return nil, err
	}
	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(BucketName))
		return err
	}); err != nil {
		return nil, err
	}
	return &MissionStore{
		Context: ctx,
		DB:      db,
	}, nil
}

// Close ...
func (s *MissionStore) Close() {
	s.DB.Close()
}

// Put stores a mission digest under its name, replacing any previous
// digest for the same mission.
func (s *MissionStore) Put(m *StoredMission) error {
	log.Debug("Storing mission digest: %s", m.Name)
	encoded, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return ErrBucketNotFound{Bucket: BucketName}
		}
		return b.Put([]byte(m.Name), encoded)
	})
}

// Get ...
func (s *MissionStore) Get(name string) (*StoredMission, error) {
	log.Debug("Getting mission digest: %s", name)
	m := &StoredMission{}
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return ErrBucketNotFound{Bucket: BucketName}
		}
		encoded := b.Get([]byte(name))
		if encoded == nil {
			return ErrMissionNotFound{Name: name}
		}
		return json.Unmarshal(encoded, m)
	}); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns all stored mission digests in key order.
func (s *MissionStore) List() ([]*StoredMission, error) {
	log.Debug("Listing mission digests")
	var missions []*StoredMission
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return ErrBucketNotFound{Bucket: BucketName}
		}
		return b.ForEach(func(k, v []byte) error {
			m := &StoredMission{}
			if err := json.Unmarshal(v, m); err != nil {
				return err
			}
			missions = append(missions, m)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return missions, nil
}

// Delete removes a mission digest. Deleting a missing mission is not
// an error.
func (s *MissionStore) Delete(name string) error {
	log.Debug("Deleting mission digest: %s", name)
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName))
		if b == nil {
			return ErrBucketNotFound{Bucket: BucketName}
		}
		return b.Delete([]byte(name))
	})
}
