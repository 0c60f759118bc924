package main

import (
	"autograph-openre/domain/extraction"
	"autograph-openre/domain/parsecall"
	"autograph-openre/domain/tokenize"
	"autograph-openre/logging"
	"autograph-openre/metrics"
	"autograph-openre/repository/metadata"
	"autograph-openre/utils"
	"autograph-openre/utils/email"
	"context"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
)

func extractCmd() *cobra.Command {
	var task extraction.Task

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract triplets from a JSON record file",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, map[string]string{
				"extract.batch_size":      "batch-size",
				"extract.workers":         "workers",
				"extract.tokenizer":       "tokenizer",
				"extract.use_accelerator": "use-accelerator",
				"extract.mode":            "mode",
				"extract.indent":          "indent",
				"extract.notify_email":    "email",
				"extract.save_to_db":      "save",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runExtract(ctx, &task)
		},
	}

	cmd.Flags().StringVarP(&task.Input, "input", "i", "", "input JSON file")
	cmd.Flags().StringVarP(&task.Output, "output", "o", "", "output JSON file")
	cmd.Flags().StringVar(&task.Name, "name", "", "run name, default input file name")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	cmd.Flags().Int("batch-size", 0, "sentences per parser call")
	cmd.Flags().Int("workers", 0, "goroutines matching sentences")
	cmd.Flags().Bool("use-accelerator", false, "let the parser use GPU")
	cmd.Flags().String("tokenizer", "", "tokenizer for records without token_list: treebank or jieba")
	cmd.Flags().String("mode", "", "extraction mode, see 'openre modes'")
	cmd.Flags().Int("indent", 0, "output JSON indent, negative for compact")
	cmd.Flags().String("email", "", "notify this address when done")
	cmd.Flags().Bool("save", false, "save the run to MySQL")

	return cmd
}

func runExtract(ctx context.Context, task *extraction.Task) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	logger := logging.Default()

	email.Init(emailConf(cfg))
	if cfg.Extract.SaveToDB {
		metadata.Init(metadataConf(cfg))
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

	setting.Provider = provider
	setting.Tokenizer = tokenizer
	setting.Observer = metrics.NewRecorder()

	extractor, err := extraction.NewExtractor(setting)
	if err != nil {
		return err
	}

	task.Email = cfg.Extract.NotifyEmail
	task.Indent = cfg.Extract.Indent
	result, err := extractor.RunFile(ctx, task)
	if err != nil {
		return err
	}

	logger.WithFields(result.Stats.Fields()).Infof("run [%s] finished, output [%s]", result.RunUUID, task.Output)
	return nil
}
