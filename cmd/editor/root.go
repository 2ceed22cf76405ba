package main

import (
	"fmt"
	"os"

	"scene-editor/internal/editor"
	"scene-editor/internal/engineconfig"
	"scene-editor/internal/fonts"
	"scene-editor/internal/hotkeys"
	"scene-editor/internal/hud"
	"scene-editor/internal/input"
	"scene-editor/internal/logger"
	"scene-editor/internal/render"
	"scene-editor/internal/scene"
	"scene-editor/internal/textures"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "editor",
	Short: "A minimal 3D scene editor driven by hotkeys",
	Long: `Opens a window with a seeded scene of cubes and spheres. Digit keys add, move
and rotate objects, Z and Y undo and redo, Escape quits. Run "editor keys" for the full map.`,
	SilenceUsage: true,
	RunE:         runEditor,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("prefs", engineconfig.PrefsPath, "Engine preferences file (TOML)")
	rootCmd.PersistentFlags().String("layout", "", "Scene layout file (YAML); empty uses the built-in layout")
	rootCmd.Flags().Bool("fullscreen", false, "Open the window fullscreen")
	rootCmd.Flags().Int("history-depth", 0, "Maximum undo entries kept (0 keeps all)")
}

func loadPrefs(cmd *cobra.Command) (engineconfig.EnginePrefs, error) {
	path, _ := cmd.Flags().GetString("prefs")
	return engineconfig.Load(path)
}

func loadLayout(cmd *cobra.Command) (engineconfig.Layout, error) {
	path, _ := cmd.Flags().GetString("layout")
	return engineconfig.LoadLayout(path)
}

func runEditor(cmd *cobra.Command, args []string) error {
	prefs, prefsErr := loadPrefs(cmd)
	if cmd.Flags().Changed("fullscreen") {
		prefs.Fullscreen, _ = cmd.Flags().GetBool("fullscreen")
	}
	if cmd.Flags().Changed("history-depth") {
		prefs.HistoryDepth, _ = cmd.Flags().GetInt("history-depth")
	}

	log, err := logger.New(prefs.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, warnStyle(err.Error()+", logging to stderr only"))
		log, _ = logger.New("")
	}
	defer log.Close()
	if prefsErr != nil {
		log.Error("prefs", prefsErr)
	}

	layout, err := loadLayout(cmd)
	if err != nil {
		return err
	}
	objs, err := layout.Build()
	if err != nil {
		return err
	}

	h := scene.NewHistory(objs...)
	h.SetDepth(prefs.HistoryDepth)
	router := hotkeys.NewRouter(prefs.RouterOptions())
	km := hotkeys.NewKeymap(input.DefaultBindings()...)
	ed := editor.New(h, router, log)
	log.Logf("Scene seeded with %d objects", h.Len())

	decoded := textures.DecodeAll(layout.Textures)

	view := render.NewView()
	view.GridVisible = prefs.GridVisible
	rnd := render.NewRenderer(view)
	overlay := hud.New(log, km, router)
	overlay.ShowFPS = prefs.ShowFPS
	keyboard := input.NewKeyboard(km)

	render.Run(prefs, render.Hooks{
		Setup: func() {
			rnd.Upload(decoded, log)
			if path, err := fonts.Find(prefs.Font, fonts.BaseDirs()...); err == nil {
				overlay.SetFont(rl.LoadFontEx(path, 32, nil))
				log.Logf("Overlay font: %s", path)
			}
		},
		Update: func() bool {
			view.Update()
			return ed.Update(keyboard)
		},
		Draw: func() {
			rnd.Draw(func(r *render.Renderer) { ed.Render(r) })
			overlay.Draw(ed.Status())
		},
		Teardown: rnd.Unload,
	})
	log.Log("Editor closed")
	return nil
}
