package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"hcm-analyzer/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the module catalog as YAML",
	Long: `catalog prints the catalog the generator draws from: the built-in one,
overlaid with --catalog when given. The output can be edited and passed back
with --catalog.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadConfig(cmd)
		cat, err := config.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		out, err := cat.YAML()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
