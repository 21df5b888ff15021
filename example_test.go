package premis_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacoelho/premis"
)

func ExampleResolve() {
	fmt.Println(premis.Resolve("objectIdentifier", "linking"))
	// Output: {info:lc/xmlns/premis-v2}linkingObjectIdentifier
}

func ExampleBuildIdentifier() {
	id, err := premis.BuildIdentifier(premis.Identifier{Type: "local", Value: "id01"}, premis.PrefixRelatedObject)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := premis.Encode(os.Stdout, id, premis.EncodeOptions{Indent: "  "}); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	// Output:
	// <premis:relatedObjectIdentification xmlns:premis="info:lc/xmlns/premis-v2">
	//   <premis:relatedObjectIdentifierType>local</premis:relatedObjectIdentifierType>
	//   <premis:relatedObjectIdentifierValue>id01</premis:relatedObjectIdentifierValue>
	// </premis:relatedObjectIdentification>
}

func ExampleBuildDocument() {
	id, _ := premis.BuildIdentifier(premis.Identifier{Type: "local", Value: "id01"}, premis.PrefixObject)
	object, _ := premis.BuildObject(id, premis.ObjectOptions{OriginalName: "file.txt"})

	eventID, _ := premis.BuildIdentifier(premis.Identifier{Type: "local", Value: "ev01"}, premis.PrefixEvent)
	outcome, _ := premis.BuildOutcome("success", premis.OutcomeOptions{})
	event, _ := premis.BuildEvent(eventID, "fixity check", "2020-01-01T00:00:00", "ok", premis.EventOptions{
		Outcome:        outcome,
		LinkingObjects: []premis.Link{{Entity: object}},
	})

	data, err := premis.Marshal(premis.BuildDocument(object, event))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	root, err := premis.ParseDocument(strings.NewReader(string(data)))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	name, _ := premis.ParseOriginalName(premis.FindObjectByID(root, "id01"))
	fmt.Println(name, premis.EventCount(root))
	// Output: file.txt 1
}

func ExampleGroupEventsByOutcome() {
	root := premis.BuildDocument()
	for i, outcome := range []string{"success", "failure", "success"} {
		id, _ := premis.BuildIdentifier(premis.Identifier{Type: "local", Value: fmt.Sprint(i)}, premis.PrefixEvent)
		info, _ := premis.BuildOutcome(outcome, premis.OutcomeOptions{})
		event, _ := premis.BuildEvent(id, "virus check", "2020-01-01", "", premis.EventOptions{Outcome: info})
		root.Append(event)
	}

	groups := premis.GroupEventsByOutcome(premis.IterEvents(root))
	fmt.Println(len(groups["success"]), len(groups["failure"]))
	// Output: 2 1
}
