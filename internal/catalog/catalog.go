// Package catalog loads the static plan tables and marketing copy rendered by
// the pricing variants.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

// EmbeddedPath names the built-in catalog in error messages.
const EmbeddedPath = "catalog.yaml"

//go:embed catalog.yaml
var embedded []byte

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)

	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the built-in catalog. It panics if the embedded document
// does not parse or validate.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(EmbeddedPath, embedded)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", defaultErr))
	}
	return defaultCat
}

// LoadFile reads, parses and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a catalog document. The path is only used to
// annotate errors.
func Parse(path string, data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, pkerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Page returns the content for a variant id.
func (c *Catalog) Page(id string) (Page, bool) {
	if c == nil {
		return Page{}, false
	}
	p, ok := c.Pages[id]
	return p, ok
}

// MustPage returns the content for a variant id or panics. Only use it for
// ids already known to be present, such as those of the embedded catalog.
func (c *Catalog) MustPage(id string) Page {
	p, ok := c.Page(id)
	if !ok {
		panic(fmt.Sprintf("catalog: no page for variant %q", id))
	}
	return p
}

// IDs lists the page ids in sorted order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Pages))
	for id := range c.Pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
