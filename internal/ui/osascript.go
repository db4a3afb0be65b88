package ui

import (
	"fmt"
	"log"
	"os/exec"
	"strings"
)

const loginTitle = "Time Tracker Login"

// Osascript renders dialogs through the macOS osascript bridge. Cancelled
// dialogs make osascript exit non-zero, which is reported as ok == false.
type Osascript struct{}

func (Osascript) PromptLogin() (LoginInput, bool) {
	name, _, ok := prompt(loginTitle, "Name:", []string{"Cancel", "Continue"}, "Continue")
	if !ok {
		return LoginInput{}, false
	}
	number, button, ok := prompt(loginTitle, "User Number:", []string{"Cancel", "Create User", "Login"}, "Login")
	if !ok {
		return LoginInput{}, false
	}
	return LoginInput{
		Name:       strings.TrimSpace(name),
		UserNumber: strings.TrimSpace(number),
		CreateUser: button == "Create User",
	}, true
}

func (Osascript) PromptReminder() (string, bool) {
	raw, _, ok := prompt("Lunch Reminder", "Lunch Time (HH:MM):", []string{"Cancel", "Set Reminder"}, "Set Reminder")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func (Osascript) Alert(title, message string) {
	runScript(fmt.Sprintf("display alert %q message %q", title, message))
}

func (Osascript) Warn(title, message string) {
	runScript(fmt.Sprintf("display alert %q message %q as warning", title, message))
}

// prompt shows a single-field dialog and returns the entered text and the
// button that closed it.
func prompt(title, label string, buttons []string, defaultButton string) (text, button string, ok bool) {
	script := fmt.Sprintf(
		"set r to display dialog %q with title %q default answer \"\" buttons {%s} default button %q cancel button \"Cancel\"",
		label, title, quoteList(buttons), defaultButton,
	)
	out, err := exec.Command("osascript", "-e", script, "-e", "button returned of r & linefeed & text returned of r").Output()
	if err != nil {
		// Cancel button or closed window.
		return "", "", false
	}
	parts := strings.SplitN(strings.TrimRight(string(out), "\n"), "\n", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[1], parts[0], true
}

func runScript(script string) {
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		log.Printf("dialog: %v", err)
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
