package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkerrors "github.com/devlance074/pricing-ui-kit/pkg/errors"
)

func TestDefaultCatalogLoads(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NotNil(t, c)
	assert.Equal(t, []string{"centered", "classic", "dark", "glass", "split"}, c.IDs())

	for _, id := range c.IDs() {
		page := c.MustPage(id)
		assert.Len(t, page.Plans, 3, "page %s", id)

		popular := 0
		for _, plan := range page.Plans {
			if plan.Popular {
				popular++
			}
		}
		assert.Equal(t, 1, popular, "page %s should flag exactly one plan", id)
	}
}

func TestCenteredBillingTables(t *testing.T) {
	t.Parallel()

	page := Default().MustPage("centered")
	require.True(t, page.HasBillingToggle())

	monthly := []string{}
	yearly := []string{}
	for i := range page.Plans {
		monthly = append(monthly, page.Plans[i].Price)
		yearly = append(yearly, page.Yearly[i].Price)
		assert.Equal(t, page.Plans[i].Price, page.Yearly[i].OriginalPrice)
		assert.True(t, page.Yearly[i].Discounted())
		assert.Equal(t, page.Plans[i].Features, page.Yearly[i].Features)
	}
	assert.Equal(t, []string{"$12", "$39", "$89"}, monthly)
	assert.Equal(t, []string{"$9", "$29", "$69"}, yearly)
	assert.Equal(t, "Save 25%", page.SavingsLabel)
}

func TestSplitFAQs(t *testing.T) {
	t.Parallel()

	page := Default().MustPage("split")
	require.Len(t, page.FAQs, 4)
	assert.Equal(t, "What kind of support do you offer?", page.FAQs[2].Question)
	assert.Contains(t, page.FAQs[2].Answer, "guaranteed response times")
}

func TestParse(t *testing.T) {
	t.Parallel()

	valid := `pages:
  solo:
    headline: Hi
    popular_label: Best
    plans:
      - name: One
        price: $1
        period: /month
        description: Only plan
        cta: Buy
        features: [Everything]
`

	cases := []struct {
		name   string
		doc    string
		assert func(t *testing.T, c *Catalog, err error)
	}{
		{
			name: "valid document",
			doc:  valid,
			assert: func(t *testing.T, c *Catalog, err error) {
				require.NoError(t, err)
				page, ok := c.Page("solo")
				require.True(t, ok)
				assert.Equal(t, "One", page.Plans[0].Name)
				assert.False(t, page.HasBillingToggle())
			},
		},
		{
			name: "malformed yaml reports a line",
			doc:  "pages:\n  solo: [unclosed\n",
			assert: func(t *testing.T, c *Catalog, err error) {
				var parseErr *pkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, "inline.yaml", parseErr.Path)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name: "price must be a currency amount",
			doc: `pages:
  solo:
    headline: Hi
    popular_label: Best
    plans:
      - {name: One, price: "1", period: /month, description: d, cta: Buy, features: [x]}
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *pkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Field, "price")
			},
		},
		{
			name: "swatch tokens must resolve",
			doc: `pages:
  solo:
    headline: Hi
    popular_label: Best
    plans:
      - {name: One, price: $1, period: /month, description: d, cta: Buy, features: [x], swatch: [teal-500]}
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *pkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "'token'")
			},
		},
		{
			name: "yearly table must mirror monthly",
			doc: `pages:
  solo:
    headline: Hi
    popular_label: Best
    plans:
      - {name: One, price: $2, period: /month, description: d, cta: Buy, features: [x]}
    yearly:
      - {name: Two, price: $1, original_price: $2, period: /month, description: d, cta: Buy, features: [x]}
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *pkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "pages.solo.yearly[0].name", validationErr.Field)
			},
		},
		{
			name: "yearly plans need an original price",
			doc: `pages:
  solo:
    headline: Hi
    popular_label: Best
    plans:
      - {name: One, price: $2, period: /month, description: d, cta: Buy, features: [x]}
    yearly:
      - {name: One, price: $1, period: /month, description: d, cta: Buy, features: [x]}
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *pkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "pages.solo.yearly[0].original_price", validationErr.Field)
			},
		},
		{
			name: "at most one popular plan",
			doc: `pages:
  solo:
    headline: Hi
    popular_label: Best
    plans:
      - {name: One, price: $1, period: /month, description: d, cta: Buy, features: [x], popular: true}
      - {name: Two, price: $2, period: /month, description: d, cta: Buy, features: [x], popular: true}
`,
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *pkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "at most one")
			},
		},
		{
			name: "empty document",
			doc:  "",
			assert: func(t *testing.T, c *Catalog, err error) {
				var validationErr *pkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse("inline.yaml", []byte(tc.doc))
			tc.assert(t, c, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, embedded, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().IDs(), c.IDs())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	var parseErr *pkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestNilCatalog(t *testing.T) {
	t.Parallel()

	var c *Catalog
	_, ok := c.Page("classic")
	assert.False(t, ok)
	assert.Nil(t, c.IDs())
	assert.Panics(t, func() { c.MustPage("classic") })
	require.Error(t, Validate(nil))
}
