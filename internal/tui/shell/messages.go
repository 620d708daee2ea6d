package shell

// SelectVariantMsg asks the shell to activate a variant by id.
type SelectVariantMsg struct {
	ID string
}

// ToggleDarkModeMsg flips the colour scheme.
type ToggleDarkModeMsg struct{}

// ToggleMenuMsg opens or closes the compact variant menu.
type ToggleMenuMsg struct{}

// ToggleHelpMsg opens or closes the keyboard reference.
type ToggleHelpMsg struct{}
