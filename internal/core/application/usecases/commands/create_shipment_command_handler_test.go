package commands_test

import (
	"context"
	"errors"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/activity"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shipmentCommand(t *testing.T, packageType order.PackageType) commands.CreateShipmentCommand {
	t.Helper()
	addr := kernel.PostalAddress{}
	if packageType.Physical() {
		addr = testAddress(t)
	}
	cmd, err := commands.NewCreateShipmentCommand("order_R5aBcDeFgHiJkL", "Asha Rao",
		"asha@example.com", "+919876543210", addr, packageType, 49900)
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommandHandler_Handle_Physical(t *testing.T) {
	ctx := context.Background()
	cmd := shipmentCommand(t, order.PackagePrint)

	carrier := new(MockShippingCarrier)
	carrier.On("CreateShipment", ctx, mock.AnythingOfType("ports.ShipmentRequest")).
		Return(ports.Shipment{
			CarrierOrderID: "4512345",
			ShipmentID:     "4498765",
			AWBCode:        "141123221084922",
			CourierName:    "Delhivery Surface",
		}, nil).Once()

	log := new(MockActivityLog)
	log.On("Append", ctx, activity.CategoryShipment, activity.TypeShipmentCreated, mock.Anything).Once()

	h := commands.NewCreateShipmentCommandHandler(carrier, log, testLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, result.Digital)
	require.Equal(t, "141123221084922", result.Shipment.AWBCode)

	carrier.AssertExpectations(t)
	log.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_DigitalShortCircuit(t *testing.T) {
	ctx := context.Background()
	cmd := shipmentCommand(t, order.PackagePDF)

	carrier := new(MockShippingCarrier)
	log := new(MockActivityLog)
	log.On("Append", ctx, activity.CategoryShipment, activity.TypeDigitalDelivery, mock.Anything).Once()

	h := commands.NewCreateShipmentCommandHandler(carrier, log, testLogger())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, result.Digital)

	carrier.AssertNotCalled(t, "CreateShipment", mock.Anything, mock.Anything)
	log.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_CarrierError(t *testing.T) {
	ctx := context.Background()
	cmd := shipmentCommand(t, order.PackagePrint)

	carrier := new(MockShippingCarrier)
	carrier.On("CreateShipment", ctx, mock.Anything).
		Return(ports.Shipment{}, errors.New("carrier rejected pickup pincode")).Once()

	log := new(MockActivityLog)
	log.On("Append", ctx, activity.CategoryShipment, activity.TypeShipmentError, mock.Anything).Once()

	h := commands.NewCreateShipmentCommandHandler(carrier, log, testLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	carrier.AssertExpectations(t)
	log.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_TriggerForOrder_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := testOrder(t, order.PackagePrint)

	carrier := new(MockShippingCarrier)
	carrier.On("CreateShipment", ctx, mock.Anything).
		Return(ports.Shipment{AWBCode: "141123221084922", ShipmentID: "4498765"}, nil).Once()

	log := new(MockActivityLog)
	log.On("Append", ctx, activity.CategoryShipment, activity.TypeShipmentCreated, mock.Anything).Once()
	log.On("Append", ctx, activity.CategoryShipment, activity.TypeShipmentAuto, mock.Anything).Once()

	h := commands.NewCreateShipmentCommandHandler(carrier, log, testLogger())
	h.TriggerForOrder(ctx, aggregate)

	carrier.AssertExpectations(t)
	log.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_TriggerForOrder_CarrierFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	aggregate := testOrder(t, order.PackagePrint)

	carrier := new(MockShippingCarrier)
	carrier.On("CreateShipment", ctx, mock.Anything).
		Return(ports.Shipment{}, errors.New("auth expired")).Once()

	log := new(MockActivityLog)
	log.On("Append", ctx, activity.CategoryShipment, activity.TypeShipmentError, mock.Anything).Once()
	log.On("Append", ctx, activity.CategoryShipment, activity.TypeShipmentAutoErr, mock.Anything).Once()

	h := commands.NewCreateShipmentCommandHandler(carrier, log, testLogger())
	h.TriggerForOrder(ctx, aggregate)

	log.AssertExpectations(t)
}
