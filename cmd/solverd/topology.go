package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordsolver/internal/config"
	"wordsolver/internal/topology"
)

var topologyCmd = &cobra.Command{
	Use:   "topology",
	Args:  cobra.NoArgs,
	Short: "Write the local-dev compose file",
	Long:  `Renders the redis and postgres services the solver depends on as a docker compose file.`,
	RunE:  runTopology,
}

func init() {
	topologyCmd.Flags().StringP("output", "o", "docker-compose.yml", "output path, - for stdout")
}

func runTopology(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	compose := topology.Default(cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		b, err := topology.Render(compose)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
		return nil
	}

	if err := topology.Write(output, compose); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
	return nil
}
