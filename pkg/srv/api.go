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

// go-rlf API
//
// # RESTful APIs to browse parsed REMUS mission logs
//
// Schemes: http
// Host: localhost:8044
// Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package srv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/log"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/rlf"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/store"
)

const (
	ApiPort = 8044
)

// MissionUpload is the request body for loading a mission log into the
// server.
type MissionUpload struct {
	// Path of the .RLF file on the server host
	Path string `json:"path"`
	// Name to register the mission under; the file base name when empty
	Name string `json:"name"`
}

type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	store *store.MissionStore

	mu sync.RWMutex
	// datasets holds the fully decoded missions by name. Digests in the
	// store survive restarts; datasets are reloaded on demand.
	datasets map[string]*rlf.Dataset
}

func NewApiServer(ctx context.Context, cfg *config.Config, st *store.MissionStore) (*ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d", cfg.IP, ApiPort)

	s := &ApiServer{
		Context:  ctx,
		Config:   cfg,
		store:    st,
		datasets: make(map[string]*rlf.Dataset),
	}
	return s, nil
}

// Run starts the API server and blocks.
func (s *ApiServer) Run() error {
	log.Info("Starting API server: address: %s port: %d", s.Config.IP, ApiPort)
	if err := s.configureRouter(); err != nil {
		return err
	}
	httpServer := &http.Server{
		Handler: handlers.CombinedLoggingHandler(os.Stdout, s.Router),
		Addr:    fmt.Sprintf("%s:%d", s.Config.IP, ApiPort),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() error {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	// swagger:operation GET /missions list missions
	// ---
	// summary: list stored mission digests
	// responses:
	//   "200":
	//     description: OK
	subRouter.HandleFunc("/missions", s.handleMissionList()).Methods("GET")
	// swagger:operation POST /missions load mission
	// ---
	// summary: parse an RLF file and register the mission
	// responses:
	//   "200":
	//     description: OK
	//   "400":
	//     description: Bad Request
	subRouter.HandleFunc("/missions", s.handleMissionLoad()).Methods("POST")
	subRouter.HandleFunc("/missions/{name}", s.handleMissionGet()).Methods("GET")
	subRouter.HandleFunc("/missions/{name}", s.handleMissionDelete()).Methods("DELETE")
	subRouter.HandleFunc("/missions/{name}/diagnostics", s.handleDiagnostics()).Methods("GET")
	subRouter.HandleFunc("/missions/{name}/series", s.handleSeriesList()).Methods("GET")
	subRouter.HandleFunc("/missions/{name}/series/{series}", s.handleSeriesGet()).Methods("GET")
	subRouter.HandleFunc("/missions/{name}/series/{series}/stats/{field}", s.handleSeriesStats()).Methods("GET")
	subRouter.HandleFunc("/missions/{name}/entries/{list}", s.handleEntriesGet()).Methods("GET")
	subRouter.HandleFunc("/missions/{name}/singles/{single}", s.handleSingleGet()).Methods("GET")
	return s.configureDocs(subRouter)
}

// dataset returns the decoded mission by name. Datasets live in memory
// only; after a restart the mission must be loaded again.
func (s *ApiServer) dataset(name string) (*rlf.Dataset, error) {
	s.mu.RLock()
	ds, ok := s.datasets[name]
	s.mu.RUnlock()
	if ok {
		return ds, nil
	}
	return nil, ErrMissionNotLoaded{Name: name}
}

func (s *ApiServer) parseOptions() *rlf.Options {
	return &rlf.Options{
		ReferenceSeries: s.Config.ReferenceSeries,
		DropRaw:         s.Config.DropRaw,
	}
}

func (s *ApiServer) handleMissionList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling mission list request")
		missions, err := s.store.List()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if missions == nil {
			missions = []*store.StoredMission{}
		}
		json.NewEncoder(w).Encode(missions)
	}
}

func (s *ApiServer) handleMissionLoad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upload := &MissionUpload{}
		if err := json.NewDecoder(r.Body).Decode(upload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if upload.Path == "" {
			http.Error(w, "path is required", http.StatusBadRequest)
			return
		}
		name := upload.Name
		if name == "" {
			name = filepath.Base(upload.Path)
		}
		log.Debug("Handling mission load request: name: %s path: %s", name, upload.Path)

		data, err := os.ReadFile(upload.Path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ds := rlf.Parse(data, s.parseOptions())
		m := &store.StoredMission{
			Name:     name,
			FileSize: len(data),
			ParsedAt: nowUTC(),
			Summary:  ds.Summary,
			Diag:     ds.Diag,
		}
		if err := s.store.Put(m); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.mu.Lock()
		s.datasets[name] = ds
		s.mu.Unlock()
		json.NewEncoder(w).Encode(m)
	}
}

func (s *ApiServer) handleMissionGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling mission get request: name: %s", vars["name"])
		m, err := s.store.Get(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(m)
	}
}

func (s *ApiServer) handleMissionDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling mission delete request: name: %s", vars["name"])
		if err := s.store.Delete(vars["name"]); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.mu.Lock()
		delete(s.datasets, vars["name"])
		s.mu.Unlock()
	}
}

func (s *ApiServer) handleDiagnostics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		ds, err := s.dataset(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(ds.Diag)
	}
}

func (s *ApiServer) handleSeriesList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		ds, err := s.dataset(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		names := make([]string, 0, len(ds.Series))
		for name := range ds.Series {
			names = append(names, name)
		}
		json.NewEncoder(w).Encode(names)
	}
}

func (s *ApiServer) handleSeriesGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling series get request: mission: %s series: %s", vars["name"], vars["series"])
		ds, err := s.dataset(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		series, ok := ds.Series[vars["series"]]
		if !ok {
			err := ErrRecordNotFound{Mission: vars["name"], Record: vars["series"]}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(series)
	}
}

func (s *ApiServer) handleSeriesStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		ds, err := s.dataset(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		series, ok := ds.Series[vars["series"]]
		if !ok {
			err := ErrRecordNotFound{Mission: vars["name"], Record: vars["series"]}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		stats, ok := series.Stats(vars["field"])
		if !ok {
			err := ErrRecordNotFound{Mission: vars["name"], Record: vars["field"]}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(stats)
	}
}

func (s *ApiServer) handleEntriesGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		log.Debug("Handling entries get request: mission: %s list: %s", vars["name"], vars["list"])
		ds, err := s.dataset(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		list, ok := ds.EntryLists[vars["list"]]
		if !ok {
			err := ErrRecordNotFound{Mission: vars["name"], Record: vars["list"]}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(list)
	}
}

func (s *ApiServer) handleSingleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		ds, err := s.dataset(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		single, ok := ds.Singles[vars["single"]]
		if !ok {
			err := ErrRecordNotFound{Mission: vars["name"], Record: vars["single"]}
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(single)
	}
}
