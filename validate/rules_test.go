package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTrimsStrings(t *testing.T) {
	record, fieldError := Category.Apply(map[string]interface{}{
		"name": "  Laptops  ",
	})
	require.Nil(t, fieldError)
	assert.Equal(t, "Laptops", record["name"])
}

func TestApplyRejectsBlankRequiredString(t *testing.T) {
	for _, name := range []interface{}{"", "   ", nil} {
		_, fieldError := Category.Apply(map[string]interface{}{"name": name})
		require.NotNil(t, fieldError)
		assert.Equal(t, "name", fieldError.Field)
	}
}

func TestApplyReportsFirstViolationOnly(t *testing.T) {
	// Multiple fields are wrong; only the first rule in table order
	// is reported
	_, fieldError := Product.Apply(map[string]interface{}{
		"productName": "",
		"length":      -1,
	})
	require.NotNil(t, fieldError)
	assert.Equal(t, "productName", fieldError.Field)
}

func TestNumberBounds(t *testing.T) {
	valid := map[string]interface{}{
		"thump":       "img.png",
		"quantity":    float64(5),
		"price":       float64(100000),
		"productCode": "LP-1",
		"colorName":   "Silver",
		"discount":    float64(10),
	}

	record, fieldError := Item.Apply(valid)
	require.Nil(t, fieldError)
	assert.Equal(t, float64(10), record["discount"])

	over := map[string]interface{}{}
	for k, v := range valid {
		over[k] = v
	}
	over["discount"] = float64(150)
	_, fieldError = Item.Apply(over)
	require.NotNil(t, fieldError)
	assert.Equal(t, "discount", fieldError.Field)

	negative := map[string]interface{}{}
	for k, v := range valid {
		negative[k] = v
	}
	negative["discount"] = float64(-5)
	_, fieldError = Item.Apply(negative)
	require.NotNil(t, fieldError)
	assert.Equal(t, "discount", fieldError.Field)
}

func TestAbsentDiscountDefaultsToZero(t *testing.T) {
	record, fieldError := Item.Apply(map[string]interface{}{
		"thump":       "img.png",
		"quantity":    float64(5),
		"price":       float64(100000),
		"productCode": "LP-1",
		"colorName":   "Silver",
	})
	require.Nil(t, fieldError)
	assert.Equal(t, float64(0), record["discount"])
}

func TestIntegerRejectsFractions(t *testing.T) {
	_, fieldError := Product.Apply(map[string]interface{}{
		"productName": "Laptop",
		"length":      float64(30),
		"width":       float64(20),
		"height":      float64(2),
		"weight":      float64(1.5),
		"warranty":    float64(12.5),
		"categoryID":  "c1",
		"providerID":  "pr1",
	})
	require.NotNil(t, fieldError)
	assert.Equal(t, "warranty", fieldError.Field)
	assert.Equal(t, "not an integer number", fieldError.Message)
}

func TestPositiveRejectsZeroAndNegative(t *testing.T) {
	for _, quantity := range []float64{0, -3} {
		_, fieldError := InvoiceProduct.Apply(map[string]interface{}{
			"productID": "p1",
			"quantity":  quantity,
		})
		require.NotNil(t, fieldError)
		assert.Equal(t, "quantity", fieldError.Field)
	}
}

func TestSafeRangeBound(t *testing.T) {
	_, fieldError := InvoiceProduct.Apply(map[string]interface{}{
		"productID": "p1",
		"quantity":  float64(1 << 54),
	})
	require.NotNil(t, fieldError)
	assert.Equal(t, "outside the safe number range", fieldError.Message)
}

func TestNumbersArrivingAsStrings(t *testing.T) {
	record, fieldError := InvoiceProduct.Apply(map[string]interface{}{
		"productID": "p1",
		"quantity":  "3",
	})
	require.Nil(t, fieldError)
	assert.Equal(t, float64(3), record["quantity"])

	_, fieldError = InvoiceProduct.Apply(map[string]interface{}{
		"productID": "p1",
		"quantity":  "three",
	})
	require.NotNil(t, fieldError)
	assert.Equal(t, "not a number", fieldError.Message)
}

func TestEmailAndPhonePatterns(t *testing.T) {
	base := map[string]interface{}{
		"userName": "alex",
		"email":    "alex@example.com",
		"password": "hunter2",
	}

	record, fieldError := User.Apply(base)
	require.Nil(t, fieldError)
	assert.Equal(t, false, record["isBanned"])

	bad := map[string]interface{}{}
	for k, v := range base {
		bad[k] = v
	}
	bad["email"] = "not-an-email"
	_, fieldError = User.Apply(bad)
	require.NotNil(t, fieldError)
	assert.Equal(t, "email", fieldError.Field)

	withPhone := map[string]interface{}{}
	for k, v := range base {
		withPhone[k] = v
	}
	withPhone["phoneNumber"] = "0123456789"
	record, fieldError = User.Apply(withPhone)
	require.Nil(t, fieldError)
	assert.Equal(t, "0123456789", record["phoneNumber"])

	withPhone["phoneNumber"] = "012-345"
	_, fieldError = User.Apply(withPhone)
	require.NotNil(t, fieldError)
	assert.Equal(t, "phoneNumber", fieldError.Field)
}

func TestPaymentDefaultsToCOD(t *testing.T) {
	record, fieldError := Invoice.Apply(map[string]interface{}{
		"city":          "HCM",
		"ward":          "1",
		"province":      "HCM",
		"detailAddress": "1 Main St",
		"phoneNumber":   "0123456789",
		"userID":        "u1",
	})
	require.Nil(t, fieldError)
	assert.Equal(t, "COD", record["payment"])
}

func TestOptionalFieldsMayBeAbsent(t *testing.T) {
	record, fieldError := Product.Apply(map[string]interface{}{
		"productName": "Laptop",
		"length":      float64(30),
		"width":       float64(20),
		"height":      float64(2),
		"weight":      float64(1.5),
		"warranty":    float64(12),
		"categoryID":  "c1",
		"providerID":  "pr1",
	})
	require.Nil(t, fieldError)
	_, present := record["description"]
	assert.False(t, present)
	_, present = record["options"]
	assert.False(t, present)
}

func TestStringListRejectsBlankEntries(t *testing.T) {
	_, fieldError := Product.Apply(map[string]interface{}{
		"productName": "Laptop",
		"length":      float64(30),
		"width":       float64(20),
		"height":      float64(2),
		"weight":      float64(1.5),
		"warranty":    float64(12),
		"categoryID":  "c1",
		"providerID":  "pr1",
		"options":     []interface{}{"16GB", "  "},
	})
	require.NotNil(t, fieldError)
	assert.Equal(t, "options", fieldError.Field)
}
