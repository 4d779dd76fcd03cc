package cli

import (
	"errors"

	"github.com/jrebirth-labs/jrforge/internal/facet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newUninstallCmd())
}

func newSetupCmd() *cobra.Command {
	var module string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install JRebirth on the project",
		Long: `Add the JRebirth repositories and dependencies to the project and mark it
as a JRebirth project. Running setup again is harmless.

With --module, an optional JRebirth module is installed as well; its version
is picked from the versions published in the repositories.

Example:
  jrforge setup --module Presentation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := facet.ParseModule(module)
			if err != nil {
				return err
			}

			s, err := openProject(cmd)
			if err != nil {
				return err
			}
			if err := s.coordinator(cmd).Setup(cmd.Context(), s.descriptor, m); err != nil {
				return err
			}
			return s.save()
		},
	}
	cmd.Flags().StringVarP(&module, "module", "m", "", "Optional module to install (Presentation)")
	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove JRebirth from the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openProject(cmd)
			if err != nil {
				return err
			}
			err = s.coordinator(cmd).Uninstall(s.descriptor)
			if errors.Is(err, facet.ErrNotConfigured) {
				return nil
			}
			if err != nil {
				return err
			}
			return s.save()
		},
	}
}
