package main

import (
	"io"

	"github.com/spf13/cobra"

	client "github.com/hsn0918/crocodoc-client"
)

func newDownloadCmd(opts *cliOptions) *cobra.Command {
	var (
		do     client.DownloadOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "download <uuid>",
		Short: "Print the download url for a document, or save it with --output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := buildClient(cmd, opts, true)
			if err != nil {
				return recordFailure(opts, "download", args[0], err)
			}

			if output == "" {
				return printOut(cmd, "%s\n", cli.DownloadURL(args[0], do.Params()))
			}

			err = writeToFile(output, func(w io.Writer) error {
				return cli.FetchDocument(cmd.Context(), args[0], do.Params(), w)
			})
			if err != nil {
				return recordFailure(opts, "download", args[0], err)
			}
			return printOut(cmd, "Downloaded to %s\n", output)
		},
	}

	cmd.Flags().BoolVar(&do.PDF, "pdf", false, "Download the PDF version instead of the original")
	cmd.Flags().StringVar(&do.Filename, "filename", "", "Filename for the Content-Disposition header")
	cmd.Flags().BoolVar(&do.Annotated, "annotated", false, "Include annotations (implies PDF)")
	cmd.Flags().StringVar(&do.Filter, "filter", "", "Whose annotations to include: all, none, or comma separated user ids")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save the document to this path instead of printing the url")

	return cmd
}

func newThumbnailCmd(opts *cliOptions) *cobra.Command {
	var (
		to     client.ThumbnailOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "thumbnail <uuid>",
		Short: "Print the thumbnail url for a document, or save it with --output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := buildClient(cmd, opts, true)
			if err != nil {
				return recordFailure(opts, "thumbnail", args[0], err)
			}

			if output == "" {
				return printOut(cmd, "%s\n", cli.ThumbnailURL(args[0], to.Params()))
			}

			err = writeToFile(output, func(w io.Writer) error {
				return cli.FetchThumbnail(cmd.Context(), args[0], to.Params(), w)
			})
			if err != nil {
				return recordFailure(opts, "thumbnail", args[0], err)
			}
			return printOut(cmd, "Downloaded to %s\n", output)
		},
	}

	cmd.Flags().StringVar(&to.Size, "size", "", "Maximum dimensions as {width}x{height}, e.g. 300x250")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save the thumbnail to this path instead of printing the url")

	return cmd
}

func newTextCmd(opts *cliOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "text <uuid>",
		Short: "Print the extracted text of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := buildClient(cmd, opts, true)
			if err != nil {
				return recordFailure(opts, "text", args[0], err)
			}

			text, err := cli.Text(cmd.Context(), args[0])
			if err != nil {
				return recordFailure(opts, "text", args[0], err)
			}

			if output == "" {
				return printOut(cmd, "%s", text)
			}
			return writeToFile(output, func(w io.Writer) error {
				_, err := io.WriteString(w, text)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the text to this path")

	return cmd
}
