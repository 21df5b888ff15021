package premis

import (
	"testing"

	premiserrors "github.com/jacoelho/premis/errors"
	"github.com/jacoelho/premis/pkg/xmltree"
)

func TestCheckCleanDocument(t *testing.T) {
	root := BuildDocument(
		testObject(t, "local", "id01", ObjectOptions{}),
		testEvent(t, "ev1", "creation", "", "success"),
		testAgent(t, "a1", "software"),
	)
	if err := Check(root); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
}

func TestCheckReportsEveryProblem(t *testing.T) {
	root := BuildDocument(
		testObject(t, "local", "id01", ObjectOptions{}),
		testObject(t, "local", "id01", ObjectOptions{}),
		xmltree.NewElement(name("event")),
		testAgent(t, "a1", "software"),
		xmltree.NewElement(name("agent")),
	)

	err := Check(root)
	list, ok := premiserrors.AsList(err)
	if !ok {
		t.Fatalf("Check() error = %v, want errors.List", err)
	}
	wantPaths := []string{"object[1]", "event[0]", "agent[1]"}
	if len(list) != len(wantPaths) {
		t.Fatalf("Check() found %d problems, want %d: %v", len(list), len(wantPaths), list)
	}
	for i, e := range list {
		if e.Path != wantPaths[i] {
			t.Fatalf("list[%d].Path = %q, want %q", i, e.Path, wantPaths[i])
		}
		if e.Code != premiserrors.ErrMalformedDocument {
			t.Fatalf("list[%d].Code = %s, want %s", i, e.Code, premiserrors.ErrMalformedDocument)
		}
	}
}
