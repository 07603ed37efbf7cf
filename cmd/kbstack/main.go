package main

import (
	"fmt"
	"os"

	clicommon "github.com/klothoplatform/bedrock-knowledge-base/pkg/cli_common"
	"github.com/spf13/cobra"
)

var commonCfg clicommon.CommonConfig

func cli() {
	var rootCmd = &cobra.Command{
		Use:           "kbstack",
		Short:         "Synthesize a CloudFormation stack with a Bedrock knowledge base",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	clicommon.SetupRoot(rootCmd, &commonCfg)

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSynthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	cli()
}
