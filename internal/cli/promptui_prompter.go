package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// menuSize is the number of items visible in selection menus.
const menuSize = 10

// PromptUI implements Prompter on top of promptui.
type PromptUI struct{}

// NewPromptUI creates a PromptUI attached to the terminal.
func NewPromptUI() *PromptUI {
	return &PromptUI{}
}

func (p *PromptUI) Select(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label:    label,
		Items:    items,
		Size:     menuSize,
		HideHelp: true,
	}
	idx, value, err := prompt.Run()
	if err != nil {
		return idx, value, fmt.Errorf("%w: %v", ErrPromptCancelled, err)
	}
	return idx, value, nil
}

func (p *PromptUI) Prompt(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPromptCancelled, err)
	}
	return value, nil
}

func (p *PromptUI) Confirm(label string, defaultYes bool) (bool, error) {
	def := "N"
	if defaultYes {
		def = "Y"
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   def,
	}
	result, err := prompt.Run()
	if err != nil {
		// promptui reports a declined confirm as ErrAbort; only a real
		// cancellation should propagate.
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrPromptCancelled, err)
	}
	return strings.EqualFold(result, "y") || (result == "" && defaultYes), nil
}
