package main

import (
	"autograph-openre/domain/extraction"
	"autograph-openre/domain/graph"
	"autograph-openre/domain/openre"
	"autograph-openre/domain/parsecall"
	"autograph-openre/domain/tokenize"
	"autograph-openre/logging"
	"autograph-openre/metrics"
	"autograph-openre/repository/metadata"
	"autograph-openre/repository/neograph"
	"autograph-openre/server"
	"autograph-openre/server/handler"
	"autograph-openre/utils"
	"autograph-openre/utils/email"
	"context"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
)

func serveCmd() *cobra.Command {
	var (
		relationsPath string
		runUUID       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction and visualization HTTP API",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, map[string]string{
				"server.host":        "host",
				"server.port":        "port",
				"server.debug":       "debug",
				"extract.mode":       "mode",
				"extract.save_to_db": "save",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, relationsPath, runUUID)
		},
	}

	cmd.Flags().StringVar(&relationsPath, "relations", "", "preload the graph from a relation CSV file")
	cmd.Flags().StringVar(&runUUID, "run", "", "preload the graph from a saved run")

	cmd.Flags().String("host", "", "listen host")
	cmd.Flags().Int("port", 0, "listen port")
	cmd.Flags().Bool("debug", false, "gin debug mode")
	cmd.Flags().String("mode", "", "extraction mode, see 'openre modes'")
	cmd.Flags().Bool("save", false, "save runs to MySQL")

	return cmd
}

func preloadIndex(relationsPath, runUUID string) error {
	var (
		idx *graph.Index
		err error
	)

	switch {
	case len(relationsPath) != 0:
		idx, err = graph.LoadIndexFromCSV(relationsPath)
	case len(runUUID) != 0:
		idx, err = graph.LoadIndexFromRun(runUUID)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	graph.SetIndex(idx)
	return nil
}

func runServe(ctx context.Context, relationsPath, runUUID string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	logger := logging.Default()

	email.Init(emailConf(cfg))

	if cfg.Extract.SaveToDB {
		metadata.Init(metadataConf(cfg))
	}

	if cfg.Neo4j.Enable {
		neograph.Init(neographConf(cfg))
		defer neograph.Close()
	}

	graph.Init(graphConf())
	if err := preloadIndex(relationsPath, runUUID); err != nil {
		return utils.WrapError(err, "preload graph fail")
	}

	setting, err := extractionConf(cfg)
	if err != nil {
		return err
	}

	parseConf, err := parsecallConf(cfg)
	if err != nil {
		return err
	}
	provider, err := parsecall.NewProvider(parseConf)
	if err != nil {
		return utils.WrapError(err, "connect to parser fail")
	}
	defer provider.Close()

	tokenizer, closeTokenizer, err := tokenize.New(cfg.Extract.Tokenizer)
	if err != nil {
		return err
	}
	defer closeTokenizer()

	recorder := metrics.NewRecorder()
	setting.Provider = provider
	setting.Tokenizer = tokenizer
	setting.Observer = recorder
	setting.OnRecords = func(records []*openre.Record) {
		graph.CurrentIndex().Add(graph.RelationsFromRecords(records))
	}

	extractor, err := extraction.NewExtractor(setting)
	if err != nil {
		return err
	}

	handler.Init(&handler.Config{
		Extractor:           extractor,
		GetMetadataDatabase: metadata.DatabaseRaw,
	})

	s := server.New(&server.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		DebugMode: cfg.Server.DebugMode,
		Metrics:   recorder,
	})

	logger.Infof("serve on %s:%d, mode [%s]", cfg.Server.Host, cfg.Server.Port, extractor.Mode())
	if err := s.RunServer(ctx); err != nil {
		logger.WithError(err).Errorf("run server error=\n%v", err)
		return err
	}
	return nil
}
