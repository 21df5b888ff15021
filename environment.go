package premis

import (
	"github.com/jacoelho/premis/pkg/xmltree"
)

// EnvironmentOptions holds the parts of a premis:environment. Every list is
// written in order.
type EnvironmentOptions struct {
	Characteristic string
	Purposes       []string
	Notes          []string
	// Dependencies are dependency blocks, see BuildDependency and
	// DependencyOf.
	Dependencies []*xmltree.Element
	// Children are appended last, typically software or hardware blocks.
	Children []*xmltree.Element
}

// Environment holds the fields of a premis:environment.
type Environment struct {
	Characteristic string
	Purposes       []string
	Notes          []string
	Dependencies   []Dependency
}

// Dependency holds the fields of a premis:dependency.
type Dependency struct {
	Names       []string
	Identifiers []Identifier
}

// BuildEnvironment returns a premis:environment:
//
//	<premis:environment>
//	    <premis:environmentCharacteristic>...</premis:environmentCharacteristic>
//	    <premis:environmentPurpose>...</premis:environmentPurpose>
//	    <premis:environmentNote>...</premis:environmentNote>
//	    <premis:dependency>...</premis:dependency>
//	</premis:environment>
func BuildEnvironment(opts EnvironmentOptions) (*xmltree.Element, error) {
	b := builder{op: "build environment"}
	b.requireNamed("dependencies", name("dependency"), opts.Dependencies)

	environment := xmltree.NewElement(name("environment"))
	b.optional(environment, name("environmentCharacteristic"), opts.Characteristic)
	b.each(environment, name("environmentPurpose"), opts.Purposes)
	b.each(environment, name("environmentNote"), opts.Notes)
	environment.Append(opts.Dependencies...)
	appendChildren(&b, environment, opts.Children)
	return b.done(environment)
}

// BuildDependency returns a premis:dependency with the names followed by
// dependencyIdentifier segments built from ids. Role is ignored.
func BuildDependency(names []string, ids []Identifier) (*xmltree.Element, error) {
	b := builder{op: "build dependency"}
	dependency := xmltree.NewElement(name("dependency"))
	b.each(dependency, name("dependencyName"), names)
	for _, id := range ids {
		segment, err := BuildIdentifier(Identifier{Type: id.Type, Value: id.Value}, PrefixDependency)
		if err != nil {
			b.fail(err)
			continue
		}
		dependency.Append(segment)
	}
	return b.done(dependency)
}

// DependencyOf returns a premis:dependency naming entity. entity may be an
// object, an objectIdentifier segment or a dependencyIdentifier segment; the
// identifier is always copied.
func DependencyOf(entity *xmltree.Element) (*xmltree.Element, error) {
	const op = "build dependency"
	if entity == nil {
		return nil, invalidf(op, "nil entity")
	}
	prefix := PrefixObject
	if entity.Name == PrefixDependency.IdentifierName() {
		prefix = PrefixDependency
	}
	id, ok, err := ParseIdentifier(entity, prefix)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidf(op, "%s has no identifier", entity.Name.Local)
	}
	return BuildDependency(nil, []Identifier{id})
}

// ParseEnvironments returns the environments directly under object.
func ParseEnvironments(object *xmltree.Element) ([]Environment, error) {
	var out []Environment
	for env := range object.ChildrenNamed(name("environment")) {
		deps, err := ParseDependencies(env)
		if err != nil {
			return nil, err
		}
		out = append(out, Environment{
			Characteristic: childText(env, "environmentCharacteristic"),
			Purposes:       childTexts(env, "environmentPurpose"),
			Notes:          childTexts(env, "environmentNote"),
			Dependencies:   deps,
		})
	}
	return out, nil
}

// ParseDependencies returns the dependency blocks directly under
// environment.
func ParseDependencies(environment *xmltree.Element) ([]Dependency, error) {
	var out []Dependency
	for dep := range environment.ChildrenNamed(name("dependency")) {
		ids, err := ParseLinkingIdentifiers(dep, PrefixDependency)
		if err != nil {
			return nil, err
		}
		out = append(out, Dependency{
			Names:       childTexts(dep, "dependencyName"),
			Identifiers: ids,
		})
	}
	return out, nil
}
