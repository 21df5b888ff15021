package cli

import (
	"fmt"
	"os"

	"github.com/jacoelho/premis"
	"github.com/jacoelho/premis/pkg/xmltree"
)

func (a *app) loadDocument(path string) (*xmltree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := premis.ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	a.log.Debug().Str("file", path).Msg("document parsed")
	return root, nil
}
