package cli

import (
	"github.com/jrebirth-labs/jrforge/internal/scaffold"
	"github.com/spf13/cobra"
)

// colorFlags are the flags describing a color value.
type colorFlags struct {
	value     string
	colorType string
}

func (f *colorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.value, "value", "", "Color value: six hex digits for web and rgb, 0-1 for gray")
	cmd.Flags().StringVar(&f.colorType, "color-type", "web", "Color type: web, rgb or gray")
	cmd.Flags().StringVar(&f.colorType, "colorType", "web", "Alias of --color-type")
	_ = cmd.Flags().MarkHidden("colorType")
}

func (f *colorFlags) parse() (scaffold.Color, error) {
	t, err := scaffold.ParseColorType(f.colorType)
	if err != nil {
		return scaffold.Color{}, err
	}
	c := scaffold.Color{Type: t, Value: f.value}
	return c, c.Validate()
}

func init() {
	rootCmd.AddCommand(newColorAddCmd())
}

func newColorAddCmd() *cobra.Command {
	var (
		name  string
		color colorFlags
	)

	cmd := &cobra.Command{
		Use:   "color-add",
		Short: "Add a color to the project's colors interface",
		Long: `Add a color field to the colors interface of the project, creating the
interface when it does not exist yet. A color that is already defined is left
untouched.

Example:
  jrforge color-add --name windowBorder --value CCCCCC --color-type web`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.parse()
			if err != nil {
				return err
			}

			s, err := openProject(cmd)
			if err != nil {
				return err
			}
			if err := s.requireFacet(); err != nil {
				return err
			}

			req := s.request(scaffold.KindResource, name)
			req.Color = c

			gen, err := s.generator()
			if err != nil {
				return err
			}
			_, err = gen.AddColor(req)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the color (required)")
	_ = cmd.MarkFlagRequired("name")
	color.register(cmd)
	return cmd
}
