package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	cfg "github.com/automoto/ghouls-n-orcs/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the registered levels",
	Long: `Shows every built-in level plus any maps loaded with --levels, in the
order they were registered.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var (
	idStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	startStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runLevels(cmd *cobra.Command, args []string) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}

	ids := r.IDs()
	width := 2
	for _, id := range ids {
		width = max(width, len(id))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	for _, id := range ids {
		l, err := r.Get(id)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("  %s  %s", idStyle.Width(width).Render(id), l.Name)
		if l.HasBoss {
			line += " " + bossStyle.Render("[boss]")
		}
		if l.Next != "" {
			line += " " + dimStyle.Render("-> "+l.Next)
		}
		if id == cfg.Level.Start {
			line += " " + startStyle.Render("(start)")
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'ghouls play <id>' to play a level.")
	return nil
}
