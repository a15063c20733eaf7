package workflow

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/fhofer/invoice-assistant/internal/common"
)

// Prompter is the operator interaction surface. Prompts block indefinitely for
// human input; any of them may be dismissed, which surfaces as ErrCancelled.
type Prompter interface {
	// Choose presents a closed list of options and returns the chosen one.
	Choose(label string, options []string) (string, error)
	// Input asks for free text, pre-filled with an editable initial value.
	Input(label, initial string) (string, error)
	// Show renders a titled message and returns once the operator has seen it.
	Show(title, message string)
}

// ConsolePrompter implements Prompter on the terminal.
type ConsolePrompter struct{}

func (ConsolePrompter) Choose(label string, options []string) (string, error) {
	sel := promptui.Select{Label: label, Items: options}
	_, result, err := sel.Run()
	if err != nil {
		return "", cancelOrErr(err)
	}
	return result, nil
}

func (ConsolePrompter) Input(label, initial string) (string, error) {
	p := promptui.Prompt{Label: label, Default: initial, AllowEdit: true}
	result, err := p.Run()
	if err != nil {
		return "", cancelOrErr(err)
	}
	return result, nil
}

func (ConsolePrompter) Show(title, message string) {
	fmt.Printf("\n== %s ==\n%s\n\n", title, message)
}

func cancelOrErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return common.ErrCancelled
	}
	return err
}
