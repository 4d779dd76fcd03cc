package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jrebirth-labs/jrforge/internal/javapkg"
	"github.com/jrebirth-labs/jrforge/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	var d project.Descriptor

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the project descriptor",
		Long: `Create .jrforge/project.yaml in the project directory. The descriptor records
the project name, its top-level Java package and the source layout, and is
updated by setup and uninstall.

Example:
  jrforge init --package com.example --name demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := projectDir()
			if err != nil {
				return err
			}
			desc := d
			if err := javapkg.Validate(desc.TopLevelPackage); err != nil {
				return err
			}
			if desc.Name == "" {
				desc.Name = filepath.Base(dir)
			}

			store := project.NewStore(appFs, dir)
			if err := store.Init(&desc); err != nil {
				return err
			}
			newReporter(cmd.OutOrStdout()).Success("Created %s", store.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "\nNext: run '%s setup' to install JRebirth.\n", rootCmd.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&d.Name, "name", "", "Project name (default: directory name)")
	cmd.Flags().StringVar(&d.TopLevelPackage, "package", "", "Top-level Java package (required)")
	cmd.Flags().StringVar(&d.SourceRoot, "source-root", "", "Java source directory (default: "+project.DefaultSourceRoot+")")
	cmd.Flags().StringVar(&d.ResourceRoot, "resource-root", "", "Resource directory (default: "+project.DefaultResourceRoot+")")
	_ = cmd.MarkFlagRequired("package")
	return cmd
}
