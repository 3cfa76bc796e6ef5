package order_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMoney(t *testing.T) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(49900, "INR")
	require.NoError(t, err)
	return m
}

func validAddress(t *testing.T) kernel.PostalAddress {
	t.Helper()
	addr, err := kernel.NewPostalAddress("12 MG Road", "Belagavi", "Karnataka", "590001")
	require.NoError(t, err)
	return addr
}

func digitalCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Asha Rao", "asha@example.com", "+919876543210",
		order.BirthDetails{Date: "1990-04-12", Time: "06:30", Place: "Hubli"}, kernel.PostalAddress{})
	require.NoError(t, err)
	return c
}

func physicalCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Asha Rao", "asha@example.com", "+919876543210",
		order.BirthDetails{}, validAddress(t))
	require.NoError(t, err)
	return c
}

func newCreatedOrder(t *testing.T, pkg order.PackageType) *order.Order {
	t.Helper()

	customer := digitalCustomer(t)
	if pkg.Physical() {
		customer = physicalCustomer(t)
	}

	o, err := order.NewOrder(kernel.NewUUID(), "order_rzp_123", "ORD_1700000000_abc",
		validMoney(t), pkg, customer, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_digital_order", func(t *testing.T) {
		o := newCreatedOrder(t, order.PackagePDF)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Created, o.Status())
		assert.Equal(t, "order_rzp_123", o.GatewayOrderID())
		assert.Empty(t, o.PaymentID())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("missing_gateway_order_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "ORD_1", validMoney(t),
			order.PackagePDF, digitalCustomer(t), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_receipt", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "order_rzp_123", "", validMoney(t),
			order.PackagePDF, digitalCustomer(t), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_money", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "order_rzp_123", "ORD_1", kernel.Money{},
			order.PackagePDF, digitalCustomer(t), time.Now())
		require.Error(t, err)
	})

	t.Run("unknown_package_type", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "order_rzp_123", "ORD_1", validMoney(t),
			order.PackageType("cassette"), digitalCustomer(t), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("physical_package_without_address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "order_rzp_123", "ORD_1", validMoney(t),
			order.PackagePrint, digitalCustomer(t), time.Now())
		require.ErrorIs(t, err, order.ErrAddressRequiredForPhysical)
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Capture(t *testing.T) {
	t.Run("first_capture_transitions_to_paid", func(t *testing.T) {
		o := newCreatedOrder(t, order.PackagePrint)
		created := o.UpdatedAt()

		changed := o.Capture("pay_abc", time.Now().Add(time.Minute))

		assert.True(t, changed)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "pay_abc", o.PaymentID())
		assert.True(t, o.UpdatedAt().After(created))
	})

	t.Run("replayed_capture_is_noop", func(t *testing.T) {
		o := newCreatedOrder(t, order.PackagePrint)
		require.True(t, o.Capture("pay_abc", time.Now()))
		updated := o.UpdatedAt()

		changed := o.Capture("pay_other", time.Now().Add(time.Hour))

		assert.False(t, changed)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "pay_abc", o.PaymentID(), "replay must not overwrite the payment reference")
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("capture_after_failure_is_noop", func(t *testing.T) {
		o := newCreatedOrder(t, order.PackagePDF)
		require.True(t, o.MarkFailed("card declined", time.Now()))

		assert.False(t, o.Capture("pay_abc", time.Now()))
		assert.Equal(t, order.Failed, o.Status())
	})
}

func TestOrder_MarkFailed(t *testing.T) {
	o := newCreatedOrder(t, order.PackagePDF)

	require.True(t, o.MarkFailed("card declined", time.Now()))
	assert.Equal(t, order.Failed, o.Status())
	assert.Equal(t, "card declined", o.FailureReason())

	// Terminal: a replay or a late capture changes nothing.
	assert.False(t, o.MarkFailed("timeout", time.Now()))
	assert.Equal(t, "card declined", o.FailureReason())
}

func TestOrder_Complete(t *testing.T) {
	t.Run("from_paid", func(t *testing.T) {
		o := newCreatedOrder(t, order.PackagePDF)
		require.True(t, o.Capture("pay_abc", time.Now()))

		require.True(t, o.Complete(time.Now()))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("directly_from_created", func(t *testing.T) {
		o := newCreatedOrder(t, order.PackagePDF)

		require.True(t, o.Complete(time.Now()))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("replay_is_noop", func(t *testing.T) {
		o := newCreatedOrder(t, order.PackagePDF)
		require.True(t, o.Complete(time.Now()))

		assert.False(t, o.Complete(time.Now()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder(id, "order_rzp_123", "ORD_1", validMoney(t),
			order.PackagePrint, physicalCustomer(t), order.Paid, "pay_abc", "", createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, "pay_abc", o.PaymentID())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("invalid_status_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "order_rzp_123", "ORD_1", validMoney(t),
			order.PackagePDF, digitalCustomer(t), order.Unknown, "", "", time.Now(), time.Now())
		require.Error(t, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a := newCreatedOrder(t, order.PackagePDF)
	b := newCreatedOrder(t, order.PackagePDF)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
