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
	"encoding/json"
	"net/http"

	"github.com/go-openapi/loads"
	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/mux"
)

// swaggerJSON is the API contract served at /api/swagger.json and
// rendered at /docs. Kept inline so the binary is self-contained.
const swaggerJSON = `{
  "swagger": "2.0",
  "info": {
    "title": "go-rlf API",
    "description": "Browse parsed REMUS-100 mission logs",
    "version": "1.0.0"
  },
  "basePath": "/api",
  "consumes": ["application/json"],
  "produces": ["application/json"],
  "paths": {
    "/missions": {
      "get": {
        "summary": "List stored mission digests",
        "responses": {"200": {"description": "OK"}}
      },
      "post": {
        "summary": "Parse an RLF file and register the mission",
        "parameters": [{
          "name": "body",
          "in": "body",
          "required": true,
          "schema": {
            "type": "object",
            "required": ["path"],
            "properties": {
              "path": {"type": "string"},
              "name": {"type": "string"}
            }
          }
        }],
        "responses": {
          "200": {"description": "OK"},
          "400": {"description": "Bad Request"}
        }
      }
    },
    "/missions/{name}": {
      "get": {
        "summary": "Get one mission digest",
        "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      },
      "delete": {
        "summary": "Delete a mission digest",
        "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/missions/{name}/diagnostics": {
      "get": {
        "summary": "Parse diagnostics of a loaded mission",
        "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      }
    },
    "/missions/{name}/series": {
      "get": {
        "summary": "List decoded series names",
        "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      }
    },
    "/missions/{name}/series/{series}": {
      "get": {
        "summary": "Get one decoded series",
        "parameters": [
          {"name": "name", "in": "path", "required": true, "type": "string"},
          {"name": "series", "in": "path", "required": true, "type": "string"}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      }
    },
    "/missions/{name}/series/{series}/stats/{field}": {
      "get": {
        "summary": "Min/max/mean of one series field, NaN excluded",
        "parameters": [
          {"name": "name", "in": "path", "required": true, "type": "string"},
          {"name": "series", "in": "path", "required": true, "type": "string"},
          {"name": "field", "in": "path", "required": true, "type": "string"}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      }
    },
    "/missions/{name}/entries/{list}": {
      "get": {
        "summary": "Get one decoded entry list",
        "parameters": [
          {"name": "name", "in": "path", "required": true, "type": "string"},
          {"name": "list", "in": "path", "required": true, "type": "string"}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      }
    },
    "/missions/{name}/singles/{single}": {
      "get": {
        "summary": "Get one decoded single-struct record",
        "parameters": [
          {"name": "name", "in": "path", "required": true, "type": "string"},
          {"name": "single", "in": "path", "required": true, "type": "string"}
        ],
        "responses": {
          "200": {"description": "OK"},
          "404": {"description": "Not Found"}
        }
      }
    }
  }
}`

// configureDocs validates the embedded contract, mounts it under the
// API subrouter and serves the rendered docs at /docs.
func (s *ApiServer) configureDocs(subRouter *mux.Router) error {
	doc, err := loads.Analyzed(json.RawMessage(swaggerJSON), "")
	if err != nil {
		return err
	}
	raw := doc.Raw()
	subRouter.HandleFunc("/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	}).Methods("GET")
	s.Router.Handle("/docs", middleware.Redoc(middleware.RedocOpts{
		BasePath: "/",
		Path:     "docs",
		SpecURL:  "/api/swagger.json",
		Title:    "go-rlf API",
	}, nil))
	return nil
}
