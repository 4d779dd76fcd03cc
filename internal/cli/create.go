package cli

import (
	"fmt"

	"github.com/jrebirth-labs/jrforge/internal/output"
	"github.com/jrebirth-labs/jrforge/internal/scaffold"
	"github.com/spf13/cobra"
)

var createHelp = map[scaffold.Kind]struct{ short, example string }{
	scaffold.KindMVC:      {"Create a Model, View and Controller", "mvc-create --name student"},
	scaffold.KindMV:       {"Create a Model and View", "mv-create --name login"},
	scaffold.KindFXML:     {"Create an FXML view and its controller", "fxml-create --name dashboard"},
	scaffold.KindCommand:  {"Create a command", "command-create --name openWindow"},
	scaffold.KindService:  {"Create a service", "service-create --name user"},
	scaffold.KindResource: {"Create the colors interface with a first color", "resource-create --name windowBorder"},
}

func init() {
	for _, k := range scaffold.Kinds {
		rootCmd.AddCommand(newCreateCmd(k))
	}
}

func newCreateCmd(kind scaffold.Kind) *cobra.Command {
	var (
		name  string
		color colorFlags
	)

	help := createHelp[kind]
	cmd := &cobra.Command{
		Use:   string(kind) + "-create",
		Short: help.short,
		Long: fmt.Sprintf(`%s under the %s package of the project.

Existing files are never overwritten.

Example:
  %s %s`, help.short, kind.PackageSuffix(), rootCmd.Name(), help.example),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openProject(cmd)
			if err != nil {
				return err
			}
			if err := s.requireFacet(); err != nil {
				return err
			}

			req := s.request(kind, name)
			if kind == scaffold.KindResource {
				if req.Color, err = color.parse(); err != nil {
					return err
				}
			}

			gen, err := s.generator()
			if err != nil {
				return err
			}
			result, err := gen.Generate(req)
			if err != nil {
				return err
			}
			if result.Failed() {
				return fmt.Errorf("%s generation failed: %w", kind, result.Err())
			}
			output.Debug("generation done", "kind", kind, "written", result.Written())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the generated artifact (required)")
	_ = cmd.MarkFlagRequired("name")
	if kind == scaffold.KindResource {
		color.register(cmd)
	}
	return cmd
}
