package ui

import "strings"

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	ember  = "\033[38;5;208m"
	amber  = "\033[38;5;214m"
	gold   = "\033[38;5;226m"
	mint   = "\033[38;5;121m"
	cobalt = "\033[38;5;33m"
	indigo = "\033[38;5;61m"
	orchid = "\033[38;5;177m"
)

// Banner renders a colored topshot wordmark.
func Banner() string {
	var b strings.Builder

	topshotLetters := [][]string{
		{"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "},
		{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{"██████╗  ", "██╔══██╗ ", "██████╔╝ ", "██╔═══╝  ", "██║      ", "╚═╝      "},
		{" ██████╗ ", "██╔════╝ ", "╚█████╗  ", " ╚═══██╗ ", "██████╔╝ ", "╚═════╝  "},
		{"██╗  ██╗", "██║  ██║", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
		{" ██████╗ ", "██╔═══██╗", "██║   ██║", "██║   ██║", "╚██████╔╝", " ╚═════╝ "},
		{"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "},
	}
	topshotGradient := []string{ember, amber, gold, mint, cobalt, indigo, orchid}
	topshotRows := make([]string, len(topshotLetters[0]))
	for i, letter := range topshotLetters {
		color := topshotGradient[i%len(topshotGradient)]
		for row := 0; row < len(letter); row++ {
			topshotRows[row] += color + letter[row] + "  "
		}
	}
	for _, line := range topshotRows {
		b.WriteString(bold + line + reset + "\n")
	}

	b.WriteString("\n")
	b.WriteString(bold + ember + "topshot" + reset + "  •  sliding-window CPU burn tracker\n\n")

	return b.String()
}
