package orderControllers

import (
	"context"
	"errors"
	"testing"

	"github.com/letaunahn/ecommerce-ai-shop-backend/apperr"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/letaunahn/ecommerce-ai-shop-backend/payments"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeGateway struct {
	intent payments.Intent
	err    error

	calls       int
	amountMinor int64
	currency    string
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (payments.Intent, error) {
	f.calls++
	f.amountMinor = amountMinor
	f.currency = currency
	if f.err != nil {
		return payments.Intent{}, f.err
	}
	return f.intent, nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingInfo{},
		&models.Payment{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) models.Product {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	product := models.Product{Name: name, Price: p, Stock: stock, Image: "/img/" + name + ".jpg"}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func shippingFixture(items []OrderedItemInput) PlaceOrderRequest {
	return PlaceOrderRequest{
		FullName:     "Jordan Smith",
		Locality:     "Springfield",
		Province:     "Oregon",
		Country:      "USA",
		Address:      "12 Main St",
		Zipcode:      "97477",
		Phone:        "555-0100",
		OrderedItems: items,
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	db := openTestDB(t)
	a := seedProduct(t, db, "keyboard", "30.00", 5)
	b := seedProduct(t, db, "mouse", "25.00", 5)
	gw := &fakeGateway{intent: payments.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}}

	req := shippingFixture([]OrderedItemInput{
		{ProductID: a.ID, Quantity: 1},
		{ProductID: b.ID, Quantity: 1},
	})

	result, err := PlaceOrder(context.Background(), db, gw, "usd", "buyer-1", req)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", result.ClientSecret)
	assert.Equal(t, "59.4", result.TotalPrice.String())

	// Gateway saw the total in minor units.
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, int64(5940), gw.amountMinor)
	assert.Equal(t, "usd", gw.currency)

	var order models.Order
	require.NoError(t, db.Preload("Items").Preload("ShippingInfo").Preload("Payments").
		First(&order, "id = ?", result.OrderID).Error)
	assert.Equal(t, models.OrderStatusProcessing, order.OrderStatus)
	assert.Nil(t, order.PaidAt)
	assert.True(t, order.TaxPrice.Equal(decimal.RequireFromString("4.40")))
	assert.True(t, order.ShippingPrice.IsZero())
	require.Len(t, order.Items, 2)
	titles := []string{order.Items[0].Title, order.Items[1].Title}
	assert.ElementsMatch(t, []string{"keyboard", "mouse"}, titles)
	require.NotNil(t, order.ShippingInfo)
	assert.Equal(t, "Jordan Smith", order.ShippingInfo.FullName)

	require.Len(t, order.Payments, 1)
	assert.Equal(t, models.PaymentStatusPending, order.Payments[0].PaymentStatus)
	assert.Equal(t, "pi_1", order.Payments[0].PaymentIntentID)

	// Stock moved exactly once, at reservation time.
	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, 4, got.Stock)
	assert.Equal(t, 1, got.SoldCount)
}

func TestPlaceOrderProductNotFoundWritesNothing(t *testing.T) {
	db := openTestDB(t)
	a := seedProduct(t, db, "keyboard", "30.00", 5)
	gw := &fakeGateway{intent: payments.Intent{ID: "pi_1", ClientSecret: "s"}}

	req := shippingFixture([]OrderedItemInput{
		{ProductID: a.ID, Quantity: 1},
		{ProductID: "00000000-0000-0000-0000-000000000000", Quantity: 1},
	})

	_, err := PlaceOrder(context.Background(), db, gw, "usd", "buyer-1", req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindProductNotFound, apperr.KindOf(err))
	assert.Equal(t, 0, gw.calls)

	assertNoOrderRows(t, db)
	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, 5, got.Stock)
}

func TestPlaceOrderInsufficientStockWritesNothing(t *testing.T) {
	db := openTestDB(t)
	a := seedProduct(t, db, "keyboard", "30.00", 1)
	gw := &fakeGateway{intent: payments.Intent{ID: "pi_1", ClientSecret: "s"}}

	req := shippingFixture([]OrderedItemInput{{ProductID: a.ID, Quantity: 2}})

	_, err := PlaceOrder(context.Background(), db, gw, "usd", "buyer-1", req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInsufficientStock, apperr.KindOf(err))
	assert.Equal(t, 0, gw.calls)

	assertNoOrderRows(t, db)
	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, 1, got.Stock)
	assert.Equal(t, 0, got.SoldCount)
}

func TestPlaceOrderCompensatesOnPaymentFailure(t *testing.T) {
	db := openTestDB(t)
	a := seedProduct(t, db, "keyboard", "30.00", 5)
	gw := &fakeGateway{err: errors.New("processor unreachable")}

	req := shippingFixture([]OrderedItemInput{{ProductID: a.ID, Quantity: 2}})

	_, err := PlaceOrder(context.Background(), db, gw, "usd", "buyer-1", req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindPaymentInitiation, apperr.KindOf(err))

	// The order is not left dangling: it is Cancelled, the reservation is
	// released, and no payment row exists.
	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, models.OrderStatusCancelled, order.OrderStatus)

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, 0, got.SoldCount)

	var paymentCount int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&paymentCount).Error)
	assert.Zero(t, paymentCount)
}

func TestCancelOrderReleasesStockOnce(t *testing.T) {
	db := openTestDB(t)
	a := seedProduct(t, db, "keyboard", "30.00", 5)
	gw := &fakeGateway{intent: payments.Intent{ID: "pi_1", ClientSecret: "s"}}

	req := shippingFixture([]OrderedItemInput{{ProductID: a.ID, Quantity: 2}})
	result, err := PlaceOrder(context.Background(), db, gw, "usd", "buyer-1", req)
	require.NoError(t, err)

	require.NoError(t, CancelOrder(db, result.OrderID))
	require.NoError(t, CancelOrder(db, result.OrderID))

	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, 0, got.SoldCount)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", result.OrderID).Error)
	assert.Equal(t, models.OrderStatusCancelled, order.OrderStatus)
}

func assertNoOrderRows(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, model := range []interface{}{
		&models.Order{}, &models.OrderItem{}, &models.ShippingInfo{}, &models.Payment{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
