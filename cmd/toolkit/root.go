package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/go-toolkit/pkg/config"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
	logger     *log.Logger
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "toolkit",
		Short:         "Small utilities: hashing, ids, downloads, compression and more",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(
		newHashCmd(),
		newHMACCmd(),
		newUUIDCmd(),
		newMsgIDCmd(),
		newBytesCmd(),
		newTimeAgoCmd(a),
		newGzipCmd(),
		newGunzipCmd(),
		newDownloadCmd(a),
		newExecCmd(a),
		newSysinfoCmd(),
	)

	return cmd
}

func (a *app) init(stderr io.Writer) error {
	if a.configPath == "" {
		a.cfg = config.Default()
	} else {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	a.logger = log.New(io.Discard, "", 0)
	if a.verbose {
		a.logger = log.New(stderr, "", log.LstdFlags)
	}
	return nil
}
