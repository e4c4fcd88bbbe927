package order

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/validate"
)

func TestProductAllowLists(t *testing.T) {
	_, err := NewAtHome("bpack 24/7")
	var invalid *validate.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "product", invalid.Field)

	_, err = NewAt247(ProductBpackAtBpost)
	assert.Error(t, err)

	_, err = NewInternational(ProductBpack24hPro)
	assert.Error(t, err)

	athome, err := NewAtHome(ProductBpack24hPro)
	require.NoError(t, err)
	assert.Equal(t, ProductBpack24hPro, athome.Product())

	assert.Equal(t, ProductBpackAtBpost, NewAtBpost().Product())
	assert.Equal(t, ProductBpackAtBpostIntl, NewAtIntlPugo().Product())
}

func TestBoxStatusNormalizedAndChecked(t *testing.T) {
	b := NewBox()
	require.NoError(t, b.SetStatus("announced"))
	assert.Equal(t, StatusAnnounced, b.Status())

	assert.Error(t, b.SetStatus("LOST"))
}

func TestBoxBarcodeUppercased(t *testing.T) {
	b := NewBox()
	b.SetBarcode("323212345659912345678a")
	assert.Equal(t, "323212345659912345678A", b.Barcode())
}

func TestBoxEmissionOrder(t *testing.T) {
	athome, err := NewAtHome(ProductBpack24hBusiness)
	require.NoError(t, err)
	athome.SetWeight(2000)

	b := NewBox()
	b.SetSender(NewSender())
	b.SetShipment(athome)
	b.SetRemark("fragile")
	b.SetAdditionalCustomerReference("ref-2")
	b.SetBarcode("323212345659912345678A")
	require.NoError(t, b.SetStatus(StatusOpen))

	parent := etree.NewDocument().CreateElement("parent")
	b.appendTo(parent, shm.PrefixTns)

	boxEl := parent.ChildElements()[0]
	assert.Equal(t, "box", boxEl.Tag)
	assert.Equal(t, shm.PrefixTns, boxEl.Space)

	var tags []string
	for _, child := range boxEl.ChildElements() {
		tags = append(tags, child.Tag)
	}
	// Status is service-assigned and never serialized.
	assert.Equal(t, []string{"sender", "nationalBox", "remark", "additionalCustomerReference", "barcode"}, tags)
}

func TestBoxShipmentSlotIsExclusive(t *testing.T) {
	athome, err := NewAtHome(ProductBpack24hPro)
	require.NoError(t, err)
	intl, err := NewInternational(ProductBpackWorldBusiness)
	require.NoError(t, err)

	b := NewBox()
	b.SetShipment(athome)
	require.NotNil(t, b.NationalBox())
	assert.Nil(t, b.InternationalBox())

	b.SetShipment(intl)
	assert.Nil(t, b.NationalBox())
	require.NotNil(t, b.InternationalBox())
}

func TestAt247WireTag(t *testing.T) {
	locker, err := NewAt247(ProductBpack247)
	require.NoError(t, err)
	locker.SetParcelsDepotID("014472")
	locker.SetMemberID("188565346")

	b := NewBox()
	b.SetShipment(locker)

	parent := etree.NewDocument().CreateElement("parent")
	b.appendTo(parent, shm.PrefixTns)

	national := parent.ChildElements()[0].ChildElements()[0]
	require.Equal(t, "nationalBox", national.Tag)
	require.Len(t, national.ChildElements(), 1)
	assert.Equal(t, "at24-7", national.ChildElements()[0].Tag)
}

func TestDecodeNationalBoxUnknownVariant(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<nationalBox><byCarrierPigeon/></nationalBox>`))

	_, err := decodeNationalBox(doc.Root())
	var unknown *shm.UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nationalBox", unknown.Family)
	assert.Equal(t, "byCarrierPigeon", unknown.Tag)
}

func TestAddressFieldLengths(t *testing.T) {
	a := &Address{}
	assert.Error(t, a.SetStreetName("this street name is way too long to fit forty"))
	assert.Error(t, a.SetNumber("123456789"))
	assert.Error(t, a.SetCountryCode("BEL"))

	require.NoError(t, a.SetCountryCode("be"))
	assert.Equal(t, "BE", a.CountryCode())
}

func TestPartyFieldLengths(t *testing.T) {
	s := NewSender()
	var tooLong *validate.InvalidLengthError
	err := s.SetEmailAddress("an.address.that.is.definitely.longer.than.fifty.characters@example.org")
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, "emailAddress", tooLong.Field)
	assert.Equal(t, 50, tooLong.MaxLength)

	assert.Error(t, s.SetPhoneNumber("012345678901234567890"))
	require.NoError(t, s.SetName("Alfred"))
}

func TestParcelContentTruncatesDescription(t *testing.T) {
	p := &ParcelContent{}
	p.SetItemDescription("This text is longer than 30 characters")
	assert.Equal(t, "This text is longer than 30 ch", p.ItemDescription())
	assert.Len(t, p.ItemDescription(), 30)
}

func TestOpeningHourRejectsBadDay(t *testing.T) {
	_, err := NewOpeningHour("Funday", "10:00-17:00")
	assert.Error(t, err)

	day, err := NewOpeningHour(Monday, "10:00-17:00")
	require.NoError(t, err)
	assert.Equal(t, Monday, day.Day())
}

func TestOpeningHoursEmission(t *testing.T) {
	shipmentHours := func(a *AtBpost) *etree.Element {
		parent := etree.NewDocument().CreateElement("parent")
		a.appendShipmentTo(parent, shm.PrefixTns)
		el := parent.ChildElements()[0].ChildElements()[0]
		return findChild(el, "openingHours")
	}

	// Never set: the element is omitted.
	assert.Nil(t, shipmentHours(NewAtBpost()))

	// Explicitly set to an empty list: an empty element is emitted.
	empty := NewAtBpost()
	empty.SetOpeningHours([]OpeningHour{})
	hours := shipmentHours(empty)
	require.NotNil(t, hours)
	assert.Empty(t, hours.ChildElements())

	day, err := NewOpeningHour(Monday, "10:00-17:00")
	require.NoError(t, err)
	filled := NewAtBpost()
	filled.AddOpeningHour(day)
	hours = shipmentHours(filled)
	require.NotNil(t, hours)
	require.Len(t, hours.ChildElements(), 1)
	assert.Equal(t, Monday, hours.ChildElements()[0].Tag)
	assert.Equal(t, "10:00-17:00", hours.ChildElements()[0].Text())
}

func TestCustomsInfoValidation(t *testing.T) {
	c := &CustomsInfo{}
	require.NoError(t, c.SetShipmentType("gift"))
	assert.Equal(t, ShipmentTypeGift, c.ShipmentType())
	assert.Error(t, c.SetShipmentType("CONTRABAND"))

	require.NoError(t, c.SetParcelReturnInstructions("rts"))
	assert.Error(t, c.SetParcelReturnInstructions("KEEP"))

	assert.Error(t, c.SetCurrency("USD"))
	require.NoError(t, c.SetCurrency("eur"))
	assert.Equal(t, CurrencyEUR, c.Currency())

	assert.Nil(t, c.PrivateAddress())
	c.SetPrivateAddress(false)
	require.NotNil(t, c.PrivateAddress())
	assert.False(t, *c.PrivateAddress())
}
