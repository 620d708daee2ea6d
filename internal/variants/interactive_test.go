package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenteredBillingToggle(t *testing.T) {
	t.Parallel()

	view := mountVariant(t, IDCentered).(*Centered)
	require.False(t, view.Yearly())

	monthly := view.Render(Props{})
	for _, price := range []string{"$12/month", "$39/month", "$89/month"} {
		assert.Contains(t, monthly, price)
	}
	assert.NotContains(t, monthly, "was $")
	assert.NotContains(t, monthly, "Save 25%")

	view.Update(keyPress("b"))
	require.True(t, view.Yearly())

	yearly := view.Render(Props{})
	for _, price := range []string{"$9/month", "$29/month", "$69/month"} {
		assert.Contains(t, yearly, price)
	}
	for _, was := range []string{"was $12/month", "was $39/month", "was $89/month"} {
		assert.Contains(t, yearly, was)
	}
	assert.Contains(t, yearly, "Save 25%")

	view.ToggleBilling()
	assert.False(t, view.Yearly())
	assert.Equal(t, monthly, view.Render(Props{}))
}

func TestCenteredPlansFollowBilling(t *testing.T) {
	t.Parallel()

	view := mountVariant(t, IDCentered).(*Centered)
	assert.Equal(t, "$39", view.Plans()[1].Price)
	view.ToggleBilling()
	assert.Equal(t, "$29", view.Plans()[1].Price)
	assert.Len(t, view.Bindings(), 1)
}

func TestCenteredStaticFAQ(t *testing.T) {
	t.Parallel()

	out := mountVariant(t, IDCentered).Render(Props{})
	assert.Contains(t, out, "Do you offer refunds?")
	assert.Contains(t, out, "Features included:")
	assert.Contains(t, out, " Common questions ")
}

func TestSplitFAQIsExclusive(t *testing.T) {
	t.Parallel()

	view := mountVariant(t, IDSplit).(*Split)
	require.Equal(t, NoFAQ, view.Expanded())

	collapsed := view.Render(Props{})
	assert.Contains(t, collapsed, "What kind of support do you offer?")
	assert.NotContains(t, collapsed, "guaranteed")

	view.ToggleFAQ(2)
	assert.Equal(t, 2, view.Expanded())
	assert.Contains(t, view.Render(Props{}), "guaranteed")

	view.ToggleFAQ(2)
	assert.Equal(t, NoFAQ, view.Expanded())
	assert.NotContains(t, view.Render(Props{}), "guaranteed")

	view.ToggleFAQ(2)
	view.ToggleFAQ(0)
	assert.Equal(t, 0, view.Expanded())
	out := view.Render(Props{})
	assert.NotContains(t, out, "guaranteed")
	assert.Contains(t, out, "completely")
}

func TestSplitIgnoresOutOfRangeToggle(t *testing.T) {
	t.Parallel()

	view := mountVariant(t, IDSplit).(*Split)
	view.ToggleFAQ(1)
	view.ToggleFAQ(4)
	view.ToggleFAQ(-1)
	assert.Equal(t, 1, view.Expanded())
}

func TestSplitKeyboardNavigation(t *testing.T) {
	t.Parallel()

	view := mountVariant(t, IDSplit).(*Split)

	view.Update(keyPress("n"))
	view.Update(keyPress("n"))
	assert.Equal(t, 2, view.Focus())

	view.Update(keyPress("enter"))
	assert.Equal(t, 2, view.Expanded())

	view.Update(keyPress("p"))
	view.Update(keyPress(" "))
	assert.Equal(t, 1, view.Expanded())

	view.Update(keyPress("p"))
	view.Update(keyPress("p"))
	assert.Equal(t, 3, view.Focus(), "focus wraps backwards")

	view.Update(ToggleFAQMsg{Index: 3})
	assert.Equal(t, 3, view.Expanded())
	assert.Len(t, view.Bindings(), 3)
}

func TestSplitPitchAndClosing(t *testing.T) {
	t.Parallel()

	out := mountVariant(t, IDSplit).Render(Props{DarkMode: true})
	assert.Contains(t, out, "Lightning Fast")
	assert.Contains(t, out, "4.9/5 from 2,000+ reviews")
	assert.Contains(t, out, "Still have questions?")
	assert.Contains(t, out, "Contact Support")
	assert.Contains(t, out, "All plans include 14-day free trial")
}
