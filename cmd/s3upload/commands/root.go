// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to handler functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/Clarilab/s3-upload"
	"github.com/Clarilab/s3-upload/cmd/s3upload/handlers"
)

// Root returns the root command for the s3upload CLI.
//
// The root command uploads one file and carries the utility subcommands.
func Root() *cobra.Command {
	var opts handlers.UploadOptions

	cmd := &cobra.Command{
		Use:   "s3upload <source_file> <bucket/path>",
		Short: "Upload a file to an S3-compatible object store",
		Long: `Upload a single file with one SigV4 signed PUT request.

Credentials are read from the environment:
  ` + s3.EnvAccessKeyID + `      (required)
  ` + s3.EnvSecretAccessKey + `  (required)
  ` + s3.EnvAccountID + `  (required unless --endpoint is set)
  ` + s3.EnvRegion + `     (default ` + s3.DefaultRegion + `)

Example:
  s3upload dist/index.html mybucket/site/index.html`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Upload(cmd.Context(), args[0], args[1], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "Endpoint host[:port] replacing the account endpoint")
	cmd.Flags().BoolVar(&opts.Insecure, "insecure", false, "Use plain HTTP instead of HTTPS")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log request details")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write upload metrics to this file")

	cmd.AddCommand(Version())

	return cmd
}
