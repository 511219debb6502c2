package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fluppy/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets and the parameters each one changes.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) {
	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-12s  %-5s  %-10s  %s\n", "Name", "Pipe speed", "Gap", "Spawn", "Extras")
	fmt.Printf("  %-8s  %-12s  %-5s  %-10s  %s\n", "----", "----------", "---", "-----", "------")

	for _, name := range config.Names() {
		p, _ := config.Lookup(name)
		extras := fmt.Sprintf("%s bird", p.BirdScale)
		if p.Sway.Enabled {
			extras += ", swaying gaps"
		}
		fmt.Printf("  %-8s  %-12s  %-5d  %-10s  %s\n",
			p.Name,
			fmt.Sprintf("%.0f cells/s", p.PipeSpeed),
			p.PipeGap,
			fmt.Sprintf("%.2fs", float64(p.SpawnIntervalMs)/1000),
			extras,
		)
	}

	fmt.Println()
	fmt.Println("Run 'fluppy play --difficulty <name>' to use one.")
}
