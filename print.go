package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbreitbart/appenergy/summary"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	averageStyle = lipgloss.NewStyle().Bold(true)
	tableStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderSummary formats s as a table for the terminal
func renderSummary(s *summary.Summary) string {
	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("%-35s %10s %10s %12s %14s", "App", "Time(s)", "Power(W)", "Energy(J)", "ED")))

	for _, r := range s.Rows {
		lines = append(lines, fmt.Sprintf("%-35s %10.2f %10.2f %12.2f %14.2f", r.App, r.Time, r.Power, r.Energy, r.ED))
	}

	if avg, err := s.Average(); err == nil {
		lines = append(lines, averageStyle.Render(fmt.Sprintf("%-35s %10.2f %10.2f %12.2f %14.2f", avg.App, avg.Time, avg.Power, avg.Energy, avg.ED)))
	}

	return tableStyle.Render(strings.Join(lines, "\n"))
}

func printSummary(s *summary.Summary) {
	fmt.Println(renderSummary(s))
}
