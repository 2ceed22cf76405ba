package main

import (
	"fmt"

	"scene-editor/internal/engineconfig"
	"scene-editor/internal/textures"

	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Check the scene layout and list the objects it seeds",
	Long: `Resolves the layout (built-in unless --layout is set), builds every seed object and
decodes each texture slot. Missing textures are reported but do not fail the check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, err := loadLayout(cmd)
		if err != nil {
			return err
		}
		objs, err := layout.Build()
		if err != nil {
			return err
		}

		fmt.Println(headerStyle("Textures"))
		for _, d := range textures.DecodeAll(layout.Textures) {
			if d.Err != nil {
				fmt.Printf("  %d %s %s\n", d.Slot, d.Path, warnStyle("missing, drawn untextured"))
				continue
			}
			b := d.Img.Bounds()
			fmt.Printf("  %d %s %s\n", d.Slot, d.Path, dimStyle(fmt.Sprintf("%dx%d", b.Dx(), b.Dy())))
		}

		fmt.Println(headerStyle("Objects"))
		for i, o := range objs {
			p, r := o.Position(), o.Rotation()
			fmt.Printf("  %d %s pos (%.2f, %.2f, %.2f) rot (%.1f, %.1f, %.1f) texture %d\n",
				i, keyStyle(fmt.Sprintf("%-10s", o.Name())), p.X, p.Y, p.Z, r.X, r.Y, r.Z, o.Texture())
		}
		return nil
	},
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show the effective engine preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := loadPrefs(cmd)
		if err != nil {
			fmt.Println(warnStyle(fmt.Sprintf("using default preferences: %v", err)))
		}
		fmt.Println(headerStyle("Preferences"))
		fmt.Printf("  window   %dx%d %q fullscreen=%t fps=%d\n", prefs.Width, prefs.Height, prefs.Title, prefs.Fullscreen, prefs.TargetFPS)
		fmt.Printf("  editing  move=%.2f rotate=%.1f spacing=%.2f origin=%v\n", prefs.MoveStep, prefs.RotateStep, prefs.SpawnSpacing, prefs.SpawnOrigin)
		fmt.Printf("  history  depth=%d\n", prefs.HistoryDepth)
		fmt.Printf("  log      %s\n", prefs.LogFile)
		return nil
	},
}

var prefsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default preferences file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("prefs")
		if err := engineconfig.Save(path, engineconfig.Default()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsInitCmd)
	rootCmd.AddCommand(layoutCmd, prefsCmd)
}
