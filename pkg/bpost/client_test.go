package bpost

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beebop1032/bpost-api-library/pkg/label"
	"github.com/beebop1032/bpost-api-library/pkg/order"
	"github.com/beebop1032/bpost-api-library/pkg/transport"
)

// stubCaller records the last request and plays back a canned response.
type stubCaller struct {
	method  string
	url     string
	headers map[string]string
	body    []byte

	resp *transport.Response
	err  error
}

func (s *stubCaller) Call(_ context.Context, method, url string, headers map[string]string, body []byte) (*transport.Response, error) {
	s.method = method
	s.url = url
	s.headers = headers
	s.body = body
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestClient(resp *transport.Response) (*Client, *stubCaller) {
	stub := &stubCaller{resp: resp}
	client := NewClient("107423", "secret", WithCaller(stub))
	return client, stub
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("order-0001")
	require.NoError(t, err)
	athome, err := order.NewAtHome(order.ProductBpack24hPro)
	require.NoError(t, err)
	box := order.NewBox()
	box.SetShipment(athome)
	o.AddBox(box)
	return o
}

func TestCreateOrReplaceOrder(t *testing.T) {
	client, stub := newTestClient(&transport.Response{StatusCode: http.StatusCreated})

	require.NoError(t, client.CreateOrReplaceOrder(context.Background(), testOrder(t)))

	assert.Equal(t, http.MethodPost, stub.method)
	assert.Equal(t, "https://api-parcel.bpost.be/services/shm/107423/orders", stub.url)
	assert.Equal(t, "application/vnd.bpost.shm-order-v3.3+XML", stub.headers["Content-Type"])
	// base64("107423:secret")
	assert.Equal(t, "Basic MTA3NDIzOnNlY3JldA==", stub.headers["Authorization"])
	assert.Contains(t, string(stub.body), "<tns:reference>order-0001</tns:reference>")
	assert.Contains(t, string(stub.body), "<tns:accountId>107423</tns:accountId>")
}

func TestCreateOrReplaceOrderRejectsNonEmptyBody(t *testing.T) {
	client, _ := newTestClient(&transport.Response{StatusCode: http.StatusOK, Body: []byte("surprise")})

	err := client.CreateOrReplaceOrder(context.Background(), testOrder(t))
	var invalid *InvalidResponseError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "surprise", invalid.Message)
}

func TestDoCallMapsInvalidSelection(t *testing.T) {
	body := `<?xml version="1.0"?>
<invalidSelection xmlns="http://schema.post.be/shm/deepintegration/v3/">
	<error>The requested order does not exist</error>
	<code>4012</code>
</invalidSelection>`
	client, _ := newTestClient(&transport.Response{
		StatusCode:  http.StatusNotFound,
		ContentType: "application/xml",
		Body:        []byte(body),
	})

	_, err := client.FetchOrder(context.Background(), "missing")
	var sel *InvalidSelectionError
	require.ErrorAs(t, err, &sel)
	assert.Equal(t, "The requested order does not exist", sel.Message)
	assert.Equal(t, 4012, sel.Code)
}

func TestDoCallMapsPlainTextBadRequest(t *testing.T) {
	client, _ := newTestClient(&transport.Response{
		StatusCode:  http.StatusBadRequest,
		ContentType: "text/plain;charset=utf-8",
		Body:        []byte("Can not create labels for order in status CANCELLED"),
	})

	_, err := client.FetchOrder(context.Background(), "cancelled-order")
	var invalid *InvalidResponseError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, http.StatusBadRequest, invalid.StatusCode)
	assert.Equal(t, "Can not create labels for order in status CANCELLED", invalid.Message)
}

func TestDoCallOtherStatusKeepsMessageEmpty(t *testing.T) {
	client, _ := newTestClient(&transport.Response{
		StatusCode:  http.StatusInternalServerError,
		ContentType: "text/html",
		Body:        []byte("<html>oops</html>"),
	})

	_, err := client.FetchOrder(context.Background(), "ref")
	var invalid *InvalidResponseError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, http.StatusInternalServerError, invalid.StatusCode)
	assert.Empty(t, invalid.Message)
}

func TestFetchOrder(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<orderInfo xmlns="http://schema.post.be/shm/deepintegration/v3/" xmlns:ns2="http://schema.post.be/shm/deepintegration/v3/common" xmlns:ns3="http://schema.post.be/shm/deepintegration/v3/national">
	<accountId>107423</accountId>
	<reference>my-reference</reference>
	<box>
		<nationalBox>
			<ns3:atHome>
				<ns3:product>bpack 24h Pro</ns3:product>
				<ns3:weight>1000</ns3:weight>
			</ns3:atHome>
		</nationalBox>
		<status>PRINTED</status>
	</box>
</orderInfo>`
	client, stub := newTestClient(&transport.Response{
		StatusCode:  http.StatusOK,
		ContentType: "application/vnd.bpost.shm-order-v3.3+XML",
		Body:        []byte(body),
	})

	o, err := client.FetchOrder(context.Background(), "my-reference")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, stub.method)
	assert.Equal(t, "https://api-parcel.bpost.be/services/shm/107423/orders/my-reference", stub.url)
	assert.Equal(t, "application/vnd.bpost.shm-order-v3.3+XML", stub.headers["Accept"])

	assert.Equal(t, "my-reference", o.Reference())
	require.Len(t, o.Boxes(), 1)
	assert.Equal(t, order.StatusPrinted, o.Boxes()[0].Status())
}

func TestFetchOrderInvalidXML(t *testing.T) {
	client, _ := newTestClient(&transport.Response{StatusCode: http.StatusOK, Body: []byte("not xml at <all")})

	_, err := client.FetchOrder(context.Background(), "ref")
	var invalid *InvalidXMLResponseError
	assert.ErrorAs(t, err, &invalid)
}

func TestModifyOrderStatus(t *testing.T) {
	client, stub := newTestClient(&transport.Response{StatusCode: http.StatusOK})

	require.NoError(t, client.ModifyOrderStatus(context.Background(), "order-0001", "cancelled"))

	assert.Equal(t, http.MethodPost, stub.method)
	assert.Equal(t, "https://api-parcel.bpost.be/services/shm/107423/orders/order-0001", stub.url)
	assert.Equal(t, "application/vnd.bpost.shm-orderUpdate-v3+XML", stub.headers["Content-Type"])
	body := string(stub.body)
	assert.Contains(t, body, `<orderUpdate xmlns="http://schema.post.be/shm/deepintegration/v3/"`)
	assert.Contains(t, body, "<status>CANCELLED</status>")
}

func TestModifyOrderStatusRejectsUnknownStatus(t *testing.T) {
	client, stub := newTestClient(&transport.Response{StatusCode: http.StatusOK})

	err := client.ModifyOrderStatus(context.Background(), "order-0001", "TELEPORTED")
	assert.Error(t, err)
	assert.Empty(t, stub.url, "no call should be made for an invalid status")
}

func TestFetchProductConfig(t *testing.T) {
	body := `<?xml version="1.0"?>
<productConfiguration xmlns="http://schema.post.be/shm/deepintegration/v3/">
	<deliveryMethod name="home or office">
		<product default="true" name="bpack 24h Pro"/>
	</deliveryMethod>
</productConfiguration>`
	client, stub := newTestClient(&transport.Response{StatusCode: http.StatusOK, Body: []byte(body)})

	cfg, err := client.FetchProductConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://api-parcel.bpost.be/services/shm/107423/productconfig", stub.url)
	assert.Equal(t, "application/vnd.bpost.shm-productConfiguration-v3.1+XML", stub.headers["Accept"])
	require.Len(t, cfg.DeliveryMethods(), 1)
}

const labelsResponse = `<?xml version="1.0"?>
<labels xmlns="http://schema.post.be/shm/deepintegration/v3/">
	<label>
		<barcode>323212086502907303054040</barcode>
		<mimeType>application/pdf</mimeType>
		<bytes>JVBERi0xLjQ=</bytes>
	</label>
</labels>`

func TestCreateLabelForOrder(t *testing.T) {
	client, stub := newTestClient(&transport.Response{StatusCode: http.StatusOK, Body: []byte(labelsResponse)})

	format, err := label.NewFormat("A6")
	require.NoError(t, err)
	labels, err := client.CreateLabelForOrder(context.Background(), "order-0001", format, true, true)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, stub.method)
	assert.Equal(t,
		"https://api-parcel.bpost.be/services/shm/107423/orders/order-0001/labels/A6/withReturnLabels",
		stub.url)
	assert.Equal(t, "application/vnd.bpost.shm-label-pdf-v3.4+XML", stub.headers["Accept"])
	require.Len(t, labels, 1)
	assert.Equal(t, "323212086502907303054040", labels[0].Barcode())
}

func TestCreateLabelForBoxImageAccept(t *testing.T) {
	client, stub := newTestClient(&transport.Response{StatusCode: http.StatusOK, Body: []byte(labelsResponse)})

	format, err := label.NewFormat("A4")
	require.NoError(t, err)
	_, err = client.CreateLabelForBox(context.Background(), "323212086502907303054040", format, false, false)
	require.NoError(t, err)

	assert.Equal(t,
		"https://api-parcel.bpost.be/services/shm/107423/boxes/323212086502907303054040/labels/A4",
		stub.url)
	assert.Equal(t, "application/vnd.bpost.shm-label-image-v3.4+XML", stub.headers["Accept"])
}

func TestCreateLabelInBulkForOrders(t *testing.T) {
	client, stub := newTestClient(&transport.Response{StatusCode: http.StatusOK, Body: []byte(labelsResponse)})

	format, err := label.NewFormat("A6")
	require.NoError(t, err)
	_, err = client.CreateLabelInBulkForOrders(context.Background(),
		[]string{"order-0001", "order-0002"}, format, false, true, true)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, stub.method)
	assert.Equal(t,
		"https://api-parcel.bpost.be/services/shm/107423/labels/A6?forcePrinting=true",
		stub.url)
	assert.Equal(t, "application/vnd.bpost.shm-labelRequest-v3+XML", stub.headers["Content-Type"])

	body := string(stub.body)
	assert.Contains(t, body, `<batchLabels xmlns="http://schema.post.be/shm/deepintegration/v3/">`)
	assert.Contains(t, body, "<order>order-0001</order>")
	assert.Contains(t, body, "<order>order-0002</order>")
	assert.Less(t, strings.Index(body, "order-0001"), strings.Index(body, "order-0002"))
}

func TestIsValidWeight(t *testing.T) {
	assert.True(t, IsValidWeight(0))
	assert.True(t, IsValidWeight(30000))
	assert.False(t, IsValidWeight(-1))
	assert.False(t, IsValidWeight(30001))
}

func TestWithAPIURL(t *testing.T) {
	stub := &stubCaller{resp: &transport.Response{StatusCode: http.StatusOK}}
	client := NewClient("107423", "secret", WithCaller(stub), WithAPIURL("https://shm-rest.bpost.cloud/services/shm/"))

	_, err := client.FetchProductConfig(context.Background())
	// Parsing fails on the empty body; only the URL matters here.
	assert.Error(t, err)
	assert.Equal(t, "https://shm-rest.bpost.cloud/services/shm/107423/productconfig", stub.url)
}
