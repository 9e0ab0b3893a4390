package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	return IndexOfString(targetString, sliceOfStrings) >= 0
}

// IndexOfString returns the position of targetString in sliceOfStrings, or -1 if it is not there
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// NormalizeInput lower-cases the user input and removes surrounding whitespace
func NormalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Title returns the string in title case, e.g. "new york city" -> "New York City"
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// JoinOptions joins the options in a human readable way: "A, B, or C"
func JoinOptions(options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	case 2:
		return options[0] + " or " + options[1]
	}
	return strings.Join(options[:len(options)-1], ", ") + ", or " + options[len(options)-1]
}
