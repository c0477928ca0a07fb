package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/silabario/internal/archive"
	"codeberg.org/snonux/silabario/internal/cli"
	"codeberg.org/snonux/silabario/internal/models"
	"codeberg.org/snonux/silabario/internal/processor"
	"codeberg.org/snonux/silabario/internal/report"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags, func(cmd *cobra.Command, mode cli.Mode, args []string) error {
		return runCommand(cmd, mode, args, flags)
	})

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, mode cli.Mode, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(flags)
	cli.NewLogger(cli.LogConfig{Level: flags.LogLevel, Format: flags.LogFormat})
	ctx := cmd.Context()

	// Handle --archive flag
	if flags.Archive {
		dest, err := archive.ArchiveOutput(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive output: %w", err)
		}
		fmt.Printf("Archived %s to %s\n", flags.OutputDir, dest)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), os.Stdout)
		return lister.ListAvailableModels(ctx)
	}

	format, err := report.ParseFormat(flags.Format)
	if err != nil {
		return err
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	// Progress goes to stderr so reports can be piped
	proc.SetOutput(os.Stderr)

	var runErr error
	switch mode {
	case cli.ModeSyllabify, cli.ModeIPA:
		runErr = proc.ProcessWords(ctx, mode, args)
	case cli.ModeSentence:
		runErr = proc.ProcessSentence(ctx, strings.Join(args, " "))
	default:
		switch {
		case flags.BatchFile != "":
			runErr = proc.ProcessBatch(ctx)
		case len(args) > 0:
			runErr = proc.ProcessSingleWord(ctx, args[0])
		default:
			return cmd.Help()
		}
	}

	// Partial results are still reported
	if results := proc.Results(); len(results) > 0 {
		if err := report.Write(os.Stdout, format, results); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	if flags.GenerateAnki && mode == cli.ModeFull {
		fmt.Fprintf(os.Stderr, "\nGenerating Anki import file...\n")
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Anki package created: %s\n", outputPath)
		}
	}

	return nil
}
