package cli

import (
	"fmt"

	"resumelens/internal/simulator"

	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the ATS platforms the simulator knows about",
	Long: `List the ATS platform parsing profiles available to the simulate command,
including each platform's known parsing quirks.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfigFromContext(cmd.Context())

		fmt.Println("Available platforms:")
		for _, p := range simulator.Platforms() {
			marker := " "
			if p.ID == cfg.Engines.DefaultPlatform {
				marker = "*"
			}
			fmt.Printf("%s %-12s %s\n", marker, p.ID, p.Description)
			for _, quirk := range p.Quirks {
				fmt.Printf("    - %s\n", quirk)
			}
		}
		fmt.Println()
		fmt.Println("* default platform (engines.defaultPlatform)")
	},
}
