package main

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/config"
	"github.com/klothoplatform/bedrock-knowledge-base/pkg/construct"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a stack configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := readStack(configPath)
			if err != nil {
				return err
			}
			zap.S().Infof("%s (%s) is valid", configPath, stack.Format)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Stack configuration file (.json, .yaml or .toml)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newSynthCmd() *cobra.Command {
	var configPath, outDir string
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize the stack's CloudFormation template",
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := readStack(configPath)
			if err != nil {
				return err
			}
			return synth(stack, outDir)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Stack configuration file (.json, .yaml or .toml)")
	flags.StringVarP(&outDir, "out", "o", "cdk.out", "Directory to write the cloud assembly to")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func readStack(path string) (config.Stack, error) {
	stack, err := config.ReadStack(path)
	if err != nil {
		return stack, err
	}
	if err := stack.Validate(); err != nil {
		return stack, errors.Wrapf(err, "invalid stack configuration %s", path)
	}
	return stack, nil
}

func synth(cfg config.Stack, outDir string) error {
	defer jsii.Close()
	log := zap.L()

	app := awscdk.NewApp(&awscdk.AppProps{Outdir: jsii.String(outDir)})
	if _, _, err := construct.NewStack(app, cfg); err != nil {
		return err
	}

	assembly := app.Synth(nil)
	log.Info("synthesized stack",
		zap.String("stack", cfg.StackName),
		zap.String("directory", *assembly.Directory()),
	)
	return nil
}
