package premis

import (
	"slices"
	"testing"

	premiserrors "github.com/jacoelho/premis/errors"
	"github.com/jacoelho/premis/pkg/xmltree"
)

func TestBuildEnvironmentKeepsOrder(t *testing.T) {
	dep, err := BuildDependency([]string{"libc", "python"}, []Identifier{
		{Type: "local", Value: "d2"},
		{Type: "local", Value: "d1"},
	})
	if err != nil {
		t.Fatalf("BuildDependency() error = %v", err)
	}
	env, err := BuildEnvironment(EnvironmentOptions{
		Characteristic: "minimum",
		Purposes:       []string{"render", "edit", "analyze"},
		Notes:          []string{"z", "a"},
		Dependencies:   []*xmltree.Element{dep},
	})
	if err != nil {
		t.Fatalf("BuildEnvironment() error = %v", err)
	}

	var order []string
	for _, child := range env.Children {
		order = append(order, child.Name.Local)
	}
	want := []string{
		"environmentCharacteristic",
		"environmentPurpose", "environmentPurpose", "environmentPurpose",
		"environmentNote", "environmentNote",
		"dependency",
	}
	if !slices.Equal(order, want) {
		t.Fatalf("children = %v, want %v", order, want)
	}

	object := testObject(t, "local", "id01", ObjectOptions{Children: []*xmltree.Element{env}})
	envs, err := ParseEnvironments(object)
	if err != nil {
		t.Fatalf("ParseEnvironments() error = %v", err)
	}
	if len(envs) != 1 {
		t.Fatalf("ParseEnvironments() = %d environments, want 1", len(envs))
	}
	got := envs[0]
	if !slices.Equal(got.Purposes, []string{"render", "edit", "analyze"}) || !slices.Equal(got.Notes, []string{"z", "a"}) {
		t.Fatalf("ParseEnvironments() = %+v", got)
	}
	if len(got.Dependencies) != 1 || !slices.Equal(got.Dependencies[0].Names, []string{"libc", "python"}) {
		t.Fatalf("Dependencies = %+v", got.Dependencies)
	}
	ids := got.Dependencies[0].Identifiers
	if len(ids) != 2 || ids[0].Value != "d2" || ids[1].Value != "d1" {
		t.Fatalf("dependency identifiers = %+v", ids)
	}
}

func TestDependencyOf(t *testing.T) {
	object := testObject(t, "local", "id01", ObjectOptions{})
	objectID := object.Child(PrefixObject.IdentifierName())
	depID, err := BuildIdentifier(Identifier{Type: "local", Value: "id01"}, PrefixDependency)
	if err != nil {
		t.Fatal(err)
	}

	for _, entity := range []*xmltree.Element{object, objectID, depID} {
		dep, err := DependencyOf(entity)
		if err != nil {
			t.Fatalf("DependencyOf(%s) error = %v", entity.Name.Local, err)
		}
		ids, err := ParseLinkingIdentifiers(dep, PrefixDependency)
		if err != nil {
			t.Fatal(err)
		}
		if len(ids) != 1 || ids[0] != (Identifier{Type: "local", Value: "id01"}) {
			t.Fatalf("DependencyOf(%s) = %+v", entity.Name.Local, ids)
		}
		if dep.Children[0] == depID {
			t.Fatal("DependencyOf() reused the caller's segment")
		}
	}

	for _, entity := range []*xmltree.Element{nil, xmltree.NewElement(name("object"))} {
		if _, err := DependencyOf(entity); !premiserrors.Is(err, premiserrors.ErrInvalidArgument) {
			t.Fatalf("DependencyOf() error = %v, want %s", err, premiserrors.ErrInvalidArgument)
		}
	}
}

func TestBuildEnvironmentRejectsForeignDependency(t *testing.T) {
	_, err := BuildEnvironment(EnvironmentOptions{
		Dependencies: []*xmltree.Element{xmltree.NewElement(name("software"))},
	})
	if !premiserrors.Is(err, premiserrors.ErrInvalidArgument) {
		t.Fatalf("BuildEnvironment() error = %v, want %s", err, premiserrors.ErrInvalidArgument)
	}
}
