package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var errNoTerminal = errors.New("not running in a terminal")

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// confirm asks a yes/no question. Without a terminal it answers yes, so
// scripts are not blocked.
var confirm = confirmForm

func confirmForm(title, description string) (bool, error) {
	if !interactive() {
		return true, nil
	}
	ok := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// pickTheme lets the user choose one of names.
func pickTheme(title string, names []string) (string, error) {
	if !interactive() {
		return "", errNoTerminal
	}
	var options []huh.Option[string]
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	var choice string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return choice, nil
}
