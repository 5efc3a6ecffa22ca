package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/bonnie/pkg/app"
	"github.com/gonewx/bonnie/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	seed       uint64

	setVolume   float64
	setSound    bool
	setMuteMeow bool
)

var rootCmd = &cobra.Command{
	Use:   "bonnie",
	Short: "Bonnie - a desktop companion cat",
	Long:  `Bonnie wanders around your desktop: she sleeps, walks, chases the cursor, meows, poops and teaches.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// 配置随二进制嵌入，图片和音频从工作目录的 assets/ 读取
		embedded.Init(dataFS, ".")
	},
	SilenceUsage: true,
	RunE:         runBonnie,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfig,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage saved user settings",
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change saved sound settings",
	Example: `  bonnie settings set --volume 0.5
  bonnie settings set --sound=false
  bonnie settings set --mute-meow`,
	RunE: runSettingsSet,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file overriding the built-in data/bonnie.yaml")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Fixed random seed (default: random)")

	settingsSetCmd.Flags().Float64Var(&setVolume, "volume", 0.8, "Sound volume in [0, 1]")
	settingsSetCmd.Flags().BoolVar(&setSound, "sound", true, "Enable sound effects")
	settingsSetCmd.Flags().BoolVar(&setMuteMeow, "mute-meow", false, "Mute meows only")

	settingsCmd.AddCommand(settingsResetCmd, settingsSetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runBonnie(cmd *cobra.Command, args []string) error {
	cfg := app.Config{
		Verbose:    verbose,
		ConfigPath: configPath,
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = &seed
	}

	bonnie, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}

	if err := ebiten.RunGameWithOptions(bonnie, app.RunOptions()); err != nil {
		return err
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if !verbose {
		log.SetOutput(io.Discard)
	}
	if err := app.OpenSettings().Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to defaults")
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if !verbose {
		log.SetOutput(io.Discard)
	}

	var update app.SettingsUpdate
	flags := cmd.Flags()
	if flags.Changed("volume") {
		update.SoundVolume = &setVolume
	}
	if flags.Changed("sound") {
		update.SoundEnabled = &setSound
	}
	if flags.Changed("mute-meow") {
		update.MeowMuted = &setMuteMeow
	}
	if update.Empty() {
		return fmt.Errorf("nothing to change, use --volume, --sound or --mute-meow")
	}

	sm := app.OpenSettings()
	if err := app.UpdateSettings(sm, update); err != nil {
		return err
	}
	s := sm.GetSettings()
	fmt.Fprintf(cmd.OutOrStdout(), "volume=%.2f sound=%v mute-meow=%v\n", s.SoundVolume, s.SoundEnabled, s.MeowMuted)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
