package main

import (
	"autograph-openre/domain/graph"
	"autograph-openre/domain/normalize"
	"autograph-openre/logging"
	"autograph-openre/repository/metadata"
	"autograph-openre/repository/neograph"
	"autograph-openre/utils"
	"fmt"
	"github.com/spf13/cobra"
	"os"
)

func exportCmd() *cobra.Command {
	var runUUID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the triplets of a saved run",
	}
	cmd.PersistentFlags().StringVar(&runUUID, "run", "", "run uuid")
	_ = cmd.MarkPersistentFlagRequired("run")

	var output string
	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the relation CSV used by the visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportCSV(runUUID, output)
		},
	}
	csvCmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file, default <run>.csv")

	neo4jCmd := &cobra.Command{
		Use:   "neo4j",
		Short: "Load the triplets into neo4j",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportNeo4j(runUUID)
		},
	}

	cmd.AddCommand(csvCmd)
	cmd.AddCommand(neo4jCmd)
	return cmd
}

func runExportCSV(runUUID, output string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	metadata.Init(metadataConf(cfg))
	graph.Init(graphConf())

	if len(output) == 0 {
		output = runUUID + ".csv"
	}

	file, err := os.Create(output)
	if err != nil {
		return utils.WrapErrorf(err, "create [%s] fail", output)
	}
	defer file.Close()

	if err := graph.ExportRunCSV(runUUID, file); err != nil {
		return err
	}

	logging.Default().Infof("run [%s] exported to [%s]", runUUID, output)
	return nil
}

func runExportNeo4j(runUUID string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	metadata.Init(metadataConf(cfg))
	neograph.Init(neographConf(cfg))
	defer neograph.Close()
	graph.Init(graphConf())

	return graph.LoadRunToNeo4j(runUUID)
}

func modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List extraction modes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, mode := range normalize.Modes() {
				profile := mode.Profile()
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s split-word=%t hyphenated-verb=%t abbreviation=%t chunk-merge=%t\n",
					mode, profile.SplitWordMerge, profile.HyphenatedVerbMerge, profile.AbbreviationCanonicalize, profile.ChunkMerge)
			}
		},
	}
}
