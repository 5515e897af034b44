package cli

// Prompter abstracts the interactive modals so commands can be tested with a
// scripted implementation.
type Prompter interface {
	Select(label string, items []string) (int, string, error)
	Prompt(label string) (string, error)
	Confirm(label string, defaultYes bool) (bool, error)
}
