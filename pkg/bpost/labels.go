package bpost

import (
	"context"
	"net/http"

	"github.com/beebop1032/bpost-api-library/pkg/label"
	"github.com/beebop1032/bpost-api-library/pkg/shm"
)

func labelAccept(asPDF bool) string {
	if asPDF {
		return acceptLabelPDF
	}
	return acceptLabelImage
}

// fetchLabels is the shared tail of the label operations: one GET or
// POST returning a labels document.
func (c *Client) fetchLabels(ctx context.Context, method, path string, headers map[string]string, body []byte) ([]*label.Label, error) {
	respBody, err := c.doCall(ctx, method, path, headers, body)
	if err != nil {
		return nil, err
	}
	labels, err := label.FromXMLBytes(respBody)
	if err != nil {
		return nil, &InvalidXMLResponseError{Err: err}
	}
	return labels, nil
}

func labelPath(prefix string, format label.Format, withReturnLabels bool) string {
	path := prefix + "/labels/" + format.String()
	if withReturnLabels {
		path += "/withReturnLabels"
	}
	return path
}

// CreateLabelForOrder prints labels for every unprinted box of an
// order; those boxes move to the PRINTED status.
func (c *Client) CreateLabelForOrder(ctx context.Context, reference string, format label.Format, withReturnLabels, asPDF bool) ([]*label.Label, error) {
	return c.fetchLabels(ctx, http.MethodGet,
		labelPath("/orders/"+reference, format, withReturnLabels),
		map[string]string{"Accept": labelAccept(asPDF)}, nil)
}

// CreateLabelForBox prints the label for one box by barcode.
func (c *Client) CreateLabelForBox(ctx context.Context, barcode string, format label.Format, withReturnLabels, asPDF bool) ([]*label.Label, error) {
	return c.fetchLabels(ctx, http.MethodGet,
		labelPath("/boxes/"+barcode, format, withReturnLabels),
		map[string]string{"Accept": labelAccept(asPDF)}, nil)
}

// CreateLabelInBulkForOrders prints labels for every box of the given
// orders in one round trip. forcePrinting reprints labels that were
// already printed.
func (c *Client) CreateLabelInBulkForOrders(ctx context.Context, references []string, format label.Format, withReturnLabels, asPDF, forcePrinting bool) ([]*label.Label, error) {
	path := labelPath("", format, withReturnLabels)
	if forcePrinting {
		path += "?forcePrinting=true"
	}

	doc := shm.NewDocument()
	root := doc.CreateElement("batchLabels")
	root.CreateAttr("xmlns", shm.NsV3Global)
	for _, ref := range references {
		root.CreateElement("order").SetText(ref)
	}
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Content-Type": contentTypeLabelRequest,
		"Accept":       labelAccept(asPDF),
	}
	return c.fetchLabels(ctx, http.MethodPost, path, headers, body)
}
