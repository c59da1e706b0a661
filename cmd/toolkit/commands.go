package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cecil-the-coder/go-toolkit/pkg/fetch"
	"github.com/cecil-the-coder/go-toolkit/pkg/format"
	"github.com/cecil-the-coder/go-toolkit/pkg/hashing"
	"github.com/cecil-the-coder/go-toolkit/pkg/ids"
	"github.com/cecil-the-coder/go-toolkit/pkg/retry"
	"github.com/cecil-the-coder/go-toolkit/pkg/serialize"
	"github.com/cecil-the-coder/go-toolkit/pkg/shell"
	"github.com/cecil-the-coder/go-toolkit/pkg/stream"
	"github.com/cecil-the-coder/go-toolkit/pkg/sysinfo"
	"github.com/cecil-the-coder/go-toolkit/pkg/validate"
)

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash FILE...",
		Short: "Print the SHA-256 of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				sum, err := hashing.FileSHA256(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, path)
			}
			return nil
		},
	}
}

func newHMACCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hmac KEY DATA",
		Short: "Print the HMAC-SHA256 of DATA under KEY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hashing.HMACSHA256Hex(args[0], args[1]))
			return nil
		},
	}
}

func newUUIDCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for range max(count, 1) {
				fmt.Fprintln(cmd.OutOrStdout(), ids.UUID())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs")
	return cmd
}

func newMsgIDCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "msgid",
		Short: "Generate a time-ordered message id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := (&ids.Generator{}).MessageIDWithPrefix(prefix)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", ids.DefaultMessagePrefix, "id prefix")
	return cmd
}

func newBytesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bytes N",
		Short: "Format a byte count, e.g. 1536 -> 1.50 KB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid byte count %q: %w", args[0], err)
			}
			s, err := format.Bytes(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newTimeAgoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timeago UNIX_SECONDS",
		Short: "Describe a unix timestamp relative to now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid timestamp %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.TimeAgoAt(time.Unix(sec, 0), time.Now(), a.cfg.TimeLabels()))
			return nil
		},
	}
}

func newGzipCmd() *cobra.Command {
	var level int
	cmd := &cobra.Command{
		Use:   "gzip",
		Short: "Compress stdin to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := stream.ToBuffer(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out, err := serialize.GzipCompressLevel(data, level)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().IntVarP(&level, "level", "l", serialize.DefaultCompression, "compression level (-1 default, 0-9)")
	return cmd
}

func newGunzipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gunzip",
		Short: "Decompress stdin to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := stream.ToBuffer(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out, err := serialize.GzipDecompress(data)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newDownloadCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download URL",
		Short: "Download URL to a file, or to stdout without --output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]
			if !validate.IsURL(rawURL) {
				return fmt.Errorf("not an http(s) URL: %q", rawURL)
			}

			client := fetch.NewClientBuilder().
				WithConfig(a.cfg.FetchConfig()).
				WithLogger(a.logger).
				Build()
			executor := retry.NewExecutor(a.cfg.RetryPolicy()).WithLogger(a.logger)
			ctx := cmd.Context()

			if output == "" {
				body, err := retry.ExecuteTyped(ctx, executor, func() ([]byte, error) {
					return client.Buffer(ctx, rawURL)
				})
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}

			dest, err := retry.ExecuteTyped(ctx, executor, func() (string, error) {
				return client.File(ctx, rawURL, output)
			})
			if err != nil {
				return err
			}
			info, err := os.Stat(dest)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%s)\n", color.GreenString("saved"), dest, format.MustBytes(info.Size()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file")
	return cmd
}

func newExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND",
		Short: "Run COMMAND through the shell and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.ShellOptions()
			opts.Stdin = cmd.InOrStdin()
			result, err := shell.Run(cmd.Context(), args[0], opts)
			_, _ = io.WriteString(cmd.OutOrStdout(), result.Stdout)
			_, _ = io.WriteString(cmd.ErrOrStderr(), result.Stderr)
			return err
		},
	}
}

func newSysinfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo",
		Short: "Print a JSON snapshot of the host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := sysinfo.Snapshot()
			if err != nil {
				return err
			}
			data, err := serialize.MarshalJSON(info)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
