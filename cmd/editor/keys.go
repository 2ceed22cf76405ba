package main

import (
	"fmt"

	"scene-editor/internal/hotkeys"
	"scene-editor/internal/input"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the hotkey map",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := loadPrefs(cmd)
		if err != nil {
			fmt.Println(warnStyle(fmt.Sprintf("using default preferences: %v", err)))
		}
		opts := prefs.RouterOptions()
		router := hotkeys.NewRouter(opts)

		fmt.Println(headerStyle("Hotkeys"))
		for _, b := range input.DefaultBindings() {
			label := keyStyle(fmt.Sprintf("%-10s", b.Label))
			desc := router.Describe(b.Event)
			if b.Event.Kind == hotkeys.EventAction {
				if _, err := router.Resolve(b.Event.Index); err != nil {
					fmt.Printf("  %s %s\n", label, dimStyle(desc))
					continue
				}
			}
			fmt.Printf("  %s %s\n", label, desc)
		}
		fmt.Println()
		fmt.Println(dimStyle(fmt.Sprintf("move step %.2f, rotate step %.1f deg, spawn spacing %.2f",
			opts.MoveStep, opts.RotateStep, opts.Spacing)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
