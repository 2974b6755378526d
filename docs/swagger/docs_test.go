package swagger

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestReadDoc_ListsEveryRoute(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}

	var parsed struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	want := map[string]string{
		"/":                         "get",
		"/todos/create":             "post",
		"/todos/{id}":               "get",
		"/todos/{id}/set-completed": "post",
		"/todos/{id}/set-complete":  "post",
		"/todos/{id}/delete":        "delete",
		"/lists":                    "get",
		"/lists/{id}":               "get",
		"/lists/{id}/todos":         "get",
		"/lists/create":             "post",
		"/lists/{id}/delete":        "delete",
		"/lists/{id}/set-completed": "post",
	}
	for path, method := range want {
		if _, ok := parsed.Paths[path][method]; !ok {
			t.Errorf("missing %s %s", method, path)
		}
	}
}
