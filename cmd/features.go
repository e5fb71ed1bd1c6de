package cmd

import (
	"fmt"

	"github.com/ceapwatch/ceapwatch/internal/config"
	"github.com/ceapwatch/ceapwatch/internal/features"
	"github.com/ceapwatch/ceapwatch/internal/output"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var featuresCmd = &cobra.Command{
	Use:     "features",
	Short:   "Manage feature flags",
	GroupID: "subscriber",
}

var featuresListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all feature flags and how they resolve",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, feature := range features.ListAll() {
			enabled, source := features.Resolve(getBaseDir(), feature.Name)
			state := "off"
			if enabled {
				state = "on "
			}
			fmt.Printf("%s %s %s\n",
				output.Title(fmt.Sprintf("%-20s", feature.Name)),
				state,
				output.Subtle(fmt.Sprintf("(%s) %s", source, feature.Description)))
		}
		return nil
	},
}

var featuresEnableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable a feature flag in local config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFeature(args[0], true)
	},
}

var featuresDisableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable a feature flag in local config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFeature(args[0], false)
	},
}

var featuresResetCmd = &cobra.Command{
	Use:   "reset <name>",
	Short: "Remove the local config override, falling back to the default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !features.IsKnownFeature(name) {
			output.Error("unknown feature %q", name)
			return fmt.Errorf("unknown feature %q", name)
		}
		if err := config.UnsetFeatureFlag(getBaseDir(), name); err != nil {
			output.Error("%v", err)
			return err
		}
		enabled, source := features.Resolve(getBaseDir(), name)
		output.Success("%s reset (now %v via %s)", name, enabled, source)
		return nil
	},
}

var featuresConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactively toggle the subscriber section flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		base := getBaseDir()
		preview := features.IsEnabled(base, features.SubscriberPreview.Name)
		unlock := features.IsEnabled(base, features.SubscriberUnlock.Name)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Show subscriber section").
					Description(features.SubscriberPreview.Description).
					Value(&preview),
				huh.NewConfirm().
					Title("Unlock subscriber content").
					Description(features.SubscriberUnlock.Description).
					Value(&unlock),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		if err := config.SetFeatureFlag(base, features.SubscriberPreview.Name, preview); err != nil {
			output.Error("%v", err)
			return err
		}
		if err := config.SetFeatureFlag(base, features.SubscriberUnlock.Name, unlock); err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("feature flags saved (preview=%v, unlock=%v)", preview, unlock)
		warnEnvOverride(features.SubscriberPreview.Name)
		warnEnvOverride(features.SubscriberUnlock.Name)
		return nil
	},
}

func setFeature(name string, enabled bool) error {
	if !features.IsKnownFeature(name) {
		output.Error("unknown feature %q", name)
		return fmt.Errorf("unknown feature %q", name)
	}
	if err := config.SetFeatureFlag(getBaseDir(), name, enabled); err != nil {
		output.Error("%v", err)
		return err
	}
	output.Success("%s = %v", name, enabled)
	warnEnvOverride(name)
	return nil
}

// warnEnvOverride points out when an environment variable shadows the value
// that was just written to config.
func warnEnvOverride(name string) {
	if _, source := features.Resolve(getBaseDir(), name); source == "env" {
		output.Warning("an environment override is active for %s; the config value has no effect until it is removed", name)
	}
}

func init() {
	rootCmd.AddCommand(featuresCmd)
	featuresCmd.AddCommand(featuresListCmd)
	featuresCmd.AddCommand(featuresEnableCmd)
	featuresCmd.AddCommand(featuresDisableCmd)
	featuresCmd.AddCommand(featuresResetCmd)
	featuresCmd.AddCommand(featuresConfigureCmd)
}
