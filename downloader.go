package client

import (
	"context"
	"fmt"
	"io"
)

// DownloadURL builds the download/document URL for uuid. No request is made.
// Known opts: pdf, filename, annotated, filter.
func (c *client) DownloadURL(uuid string, opts Params) string {
	return c.signedURL(EndpointDownloadDoc, uuid, opts)
}

// ThumbnailURL builds the download/thumbnail URL for uuid. No request is made.
// Known opts: size.
func (c *client) ThumbnailURL(uuid string, opts Params) string {
	return c.signedURL(EndpointDownloadThumb, uuid, opts)
}

// signedURL encodes opts, the token and uuid with sorted keys.
func (c *client) signedURL(endpoint, uuid string, opts Params) string {
	params := c.withToken(opts).Merge(Params{ParamUUID: uuid})
	return c.baseURL + "/" + endpoint + "?" + params.Encode()
}

// Text returns the extracted text of a document, UTF-8 encoded, pages
// separated by form feeds. Requires text extraction on the account.
func (c *client) Text(ctx context.Context, uuid string) (string, error) {
	body, err := c.call(ctx, MethodGet, EndpointDownloadText, OperationText, Params{ParamUUID: uuid})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchDocument downloads the document into dst.
func (c *client) FetchDocument(ctx context.Context, uuid string, opts Params, dst io.Writer) error {
	return c.fetch(ctx, EndpointDownloadDoc, OperationFetchDocument, uuid, opts, dst)
}

// FetchThumbnail downloads the thumbnail image into dst.
func (c *client) FetchThumbnail(ctx context.Context, uuid string, opts Params, dst io.Writer) error {
	return c.fetch(ctx, EndpointDownloadThumb, OperationFetchThumbnail, uuid, opts, dst)
}

func (c *client) fetch(ctx context.Context, endpoint string, operation Operation, uuid string, opts Params, dst io.Writer) error {
	if dst == nil {
		return ErrNilWriter
	}

	body, err := c.call(ctx, MethodGet, endpoint, operation, opts.Merge(Params{ParamUUID: uuid}))
	if err != nil {
		return err
	}

	if _, err := dst.Write(body); err != nil {
		return fmt.Errorf("write %s payload failed: %w", operation, err)
	}
	return nil
}
