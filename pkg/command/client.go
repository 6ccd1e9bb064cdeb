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

package command

import (
	"errors"
	"fmt"

	"github.com/imroc/req"

	"soest.hawaii.edu/oceantech/go-rlf/pkg/config"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/rlf"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/srv"
	"soest.hawaii.edu/oceantech/go-rlf/pkg/store"
)

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d/api", cfg.IP, srv.ApiPort),
	}
}

func (c *ApiClient) missionUrl(name string) string {
	return fmt.Sprintf("%s/missions/%s", c.ApiPrefix, name)
}

// Missions requests the digests of all stored missions
func (c *ApiClient) Missions() ([]*store.StoredMission, error) {
	r, err := req.Get(fmt.Sprintf("%s/missions", c.ApiPrefix))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var missions []*store.StoredMission
	err = r.ToJSON(&missions)
	if err != nil {
		return nil, err
	}
	return missions, nil
}

// Load asks the server to parse an RLF file and register the mission
func (c *ApiClient) Load(path, name string) (*store.StoredMission, error) {
	upload := &srv.MissionUpload{
		Path: path,
		Name: name,
	}
	r, err := req.Post(fmt.Sprintf("%s/missions", c.ApiPrefix), req.BodyJSON(upload))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	m := &store.StoredMission{}
	err = r.ToJSON(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Summary requests one mission's digest
func (c *ApiClient) Summary(name string) (*store.StoredMission, error) {
	r, err := req.Get(c.missionUrl(name))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	m := &store.StoredMission{}
	err = r.ToJSON(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Series requests one decoded series of a loaded mission
func (c *ApiClient) Series(mission, series string) (*rlf.Series, error) {
	r, err := req.Get(fmt.Sprintf("%s/series/%s", c.missionUrl(mission), series))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	s := &rlf.Series{}
	err = r.ToJSON(s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes one mission digest from the server
func (c *ApiClient) Delete(name string) error {
	r, err := req.Delete(c.missionUrl(name))
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}
