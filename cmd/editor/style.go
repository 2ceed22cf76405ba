package main

import "github.com/muesli/termenv"

var profile = termenv.ColorProfile()

func headerStyle(s string) termenv.Style {
	return termenv.String(s).Bold().Foreground(profile.Color("#818cf8"))
}

func keyStyle(s string) termenv.Style {
	return termenv.String(s).Foreground(profile.Color("#fbbf24"))
}

func dimStyle(s string) termenv.Style {
	return termenv.String(s).Faint()
}

func warnStyle(s string) termenv.Style {
	return termenv.String(s).Foreground(profile.Color("#fb923c"))
}

func errorStyle(s string) termenv.Style {
	return termenv.String(s).Foreground(profile.Color("#f87171"))
}
