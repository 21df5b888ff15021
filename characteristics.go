package premis

import (
	"github.com/jacoelho/premis/pkg/xmltree"
)

// DefaultDigestAlgorithm is used by BuildFixity when no algorithm is given.
const DefaultDigestAlgorithm = "MD5"

// Fixity is a digest and the algorithm that produced it.
type Fixity struct {
	Algorithm string
	Digest    string
}

// Format is a format designation with its optional registry entry.
type Format struct {
	Name        string
	Version     string
	RegistryKey string
}

// BuildFixity returns a premis:fixity block. An empty algorithm means MD5.
func BuildFixity(digest, algorithm string) (*xmltree.Element, error) {
	if algorithm == "" {
		algorithm = DefaultDigestAlgorithm
	}
	b := builder{op: "build fixity"}
	fixity := xmltree.NewElement(name("fixity"))
	b.text(fixity, name("messageDigestAlgorithm"), algorithm)
	b.text(fixity, name("messageDigest"), digest)
	return b.done(fixity)
}

// ParseFixity returns every fixity block found below object, in document
// order.
func ParseFixity(object *xmltree.Element) []Fixity {
	var out []Fixity
	for fixity := range object.Descendants(name("fixity")) {
		out = append(out, Fixity{
			Algorithm: childText(fixity, "messageDigestAlgorithm"),
			Digest:    childText(fixity, "messageDigest"),
		})
	}
	return out
}

// BuildFormatDesignation returns a formatDesignation with formatName and,
// when version is non-empty, formatVersion.
func BuildFormatDesignation(formatName, version string) (*xmltree.Element, error) {
	b := builder{op: "build format designation"}
	designation := xmltree.NewElement(name("formatDesignation"))
	b.text(designation, name("formatName"), formatName)
	b.optional(designation, name("formatVersion"), version)
	return b.done(designation)
}

// BuildFormatRegistry returns a formatRegistry. role may be empty.
func BuildFormatRegistry(registryName, key, role string) (*xmltree.Element, error) {
	b := builder{op: "build format registry"}
	registry := xmltree.NewElement(name("formatRegistry"))
	b.text(registry, name("formatRegistryName"), registryName)
	b.text(registry, name("formatRegistryKey"), key)
	b.optional(registry, name("formatRegistryRole"), role)
	return b.done(registry)
}

// BuildFormat wraps designation and registry elements in a premis:format.
func BuildFormat(children ...*xmltree.Element) (*xmltree.Element, error) {
	return container("build format", "format", children)
}

// ParseFormats returns every format found below object, in document order.
func ParseFormats(object *xmltree.Element) []Format {
	var out []Format
	for format := range object.Descendants(name("format")) {
		designation := format.Child(name("formatDesignation"))
		out = append(out, Format{
			Name:        childText(designation, "formatName"),
			Version:     childText(designation, "formatVersion"),
			RegistryKey: childText(format.Child(name("formatRegistry")), "formatRegistryKey"),
		})
	}
	return out
}

// BuildDateCreated returns a dateCreatedByApplication element.
func BuildDateCreated(date string) (*xmltree.Element, error) {
	b := builder{op: "build date created"}
	return b.done(b.leaf(name("dateCreatedByApplication"), date))
}

// BuildCreatingApplication wraps children in a creatingApplication.
func BuildCreatingApplication(children ...*xmltree.Element) (*xmltree.Element, error) {
	return container("build creating application", "creatingApplication", children)
}

// BuildObjectCharacteristics returns objectCharacteristics starting with
// compositionLevel, followed by children. An empty level means "0".
func BuildObjectCharacteristics(compositionLevel string, children ...*xmltree.Element) (*xmltree.Element, error) {
	if compositionLevel == "" {
		compositionLevel = "0"
	}
	b := builder{op: "build object characteristics"}
	characteristics := xmltree.NewElement(name("objectCharacteristics"))
	b.text(characteristics, name("compositionLevel"), compositionLevel)
	appendChildren(&b, characteristics, children)
	return b.done(characteristics)
}

func container(op, tag string, children []*xmltree.Element) (*xmltree.Element, error) {
	b := builder{op: op}
	e := xmltree.NewElement(name(tag))
	appendChildren(&b, e, children)
	return b.done(e)
}
