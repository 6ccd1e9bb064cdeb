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

package srv

import (
	"fmt"
)

type ErrMissionNotLoaded struct {
	Name string
}

func (e ErrMissionNotLoaded) Error() string {
	return fmt.Sprintf("Mission not loaded: %s. Load it with POST /api/missions", e.Name)
}

type ErrRecordNotFound struct {
	Mission string
	Record  string
}

func (e ErrRecordNotFound) Error() string {
	return fmt.Sprintf("Record not found: mission: %s record: %s", e.Mission, e.Record)
}
