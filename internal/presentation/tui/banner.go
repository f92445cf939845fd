package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for interactive sessions.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Steel-blue gradient, darkest on top.
	s1 := termenv.String("   ____             _              ").Foreground(p.Color("#38bdf8"))
	s2 := termenv.String("  / ___| __ _ _ __ | |_ _ __ _   _ ").Foreground(p.Color("#60a5fa"))
	s3 := termenv.String(" | |  _ / _` | '_ \\| __| '__| | | |").Foreground(p.Color("#818cf8"))
	s4 := termenv.String(" | |_| | (_| | | | | |_| |  | |_| |").Foreground(p.Color("#a78bfa"))
	s5 := termenv.String("  \\____|\\__,_|_| |_|\\__|_|   \\__, |").Foreground(p.Color("#c084fc"))
	s6 := termenv.String("                             |___/ ").Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
