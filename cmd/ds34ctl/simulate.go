package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/enum"
	dslog "github.com/ds3ds4/ds34drv/internal/log"
	"github.com/ds3ds4/ds34drv/internal/simhost"
	"github.com/ds3ds4/ds34drv/padcore"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/rpc"
	"github.com/ds3ds4/ds34drv/rpc/handler"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

// Simulate drives a single pad through connect, init, and a handful of
// Public API calls against simhost's in-memory fake controller, logging
// each step. It exists because this process has no physical host
// controller to attach to.
type Simulate struct {
	Model string `help:"Pad model to simulate" enum:"ds3,ds4" default:"ds4"`
}

const simDeviceID usbhost.DeviceID = 1

// Run implements the Kong command, with logger and rawLogger bound by
// main via ctx.Bind / ctx.BindTo.
func (s *Simulate) Run(logger *slog.Logger, rawLogger dslog.RawLogger) error {
	table := padtable.New()
	table.SetEnableMask(0xFF)

	ctrl := simhost.New()
	ser := transfer.New(ctrl)
	en := &enum.Enumerator{Table: table, Ctrl: ctrl, Ser: ser, Logger: logger}
	core := padcore.New(table, ctrl, ser, logger)

	disp := rpc.NewDispatcher()
	handler.RegisterAll(disp, core)

	desc, dev, rawReport, err := s.fakeDevice()
	if err != nil {
		return err
	}
	ctrl.AddDevice(simDeviceID, dev)

	if !en.Probe(desc) {
		return fmt.Errorf("simulate: descriptor not accepted by probe")
	}
	logger.Info("probe accepted", "model", s.Model)

	if err := en.Connect(simDeviceID, desc); err != nil {
		return fmt.Errorf("simulate: connect failed: %w", err)
	}
	logger.Info("connect submitted, waiting for configuration + init to settle")
	time.Sleep(100 * time.Millisecond)

	statusOut, err := disp.Dispatch(rpc.OpGetStatus, []byte{0})
	if err != nil {
		return err
	}
	logger.Info("status after init", "status", fmt.Sprintf("0x%02X", statusOut[0]))

	ctrl.QueueInput(simDeviceID, rawReport)
	dataOut, err := disp.Dispatch(rpc.OpGetData, append([]byte{0}, make([]byte, 18)...))
	if err != nil {
		return err
	}
	logger.Info("get_data", "unified", fmt.Sprintf("% x", dataOut[1:]))

	first, err := disp.Dispatch(rpc.OpGetBdaddr, []byte{0})
	if err != nil {
		return err
	}
	logger.Info("get_bdaddr (first, latched)", "result", first[0])

	second, err := disp.Dispatch(rpc.OpGetBdaddr, []byte{0})
	if err != nil {
		return err
	}
	logger.Info("get_bdaddr (second, transfers)", "result", second[0], "bdaddr", fmt.Sprintf("% x", second[1:7]))

	if _, err := disp.Dispatch(rpc.OpSetLed, []byte{0, 0x10, 0x20, 0x30, 0x00}); err != nil {
		return err
	}
	logger.Info("set_led submitted")

	if _, err := disp.Dispatch(rpc.OpReset, nil); err != nil {
		return err
	}
	logger.Info("reset complete")

	return nil
}

func (s *Simulate) fakeDevice() (usbhost.DeviceDescriptor, simhost.Device, []byte, error) {
	switch s.Model {
	case "ds3":
		desc := usbhost.DeviceDescriptor{IDVendor: usbhost.SonyVID, IDProduct: ds3.ProductID}
		dev := simhost.Device{
			Desc:       desc,
			Config:     usbhost.ConfigDescriptor{BConfigurationValue: 1, BNumInterfaces: 1},
			Interfaces: []usbhost.InterfaceDescriptor{{BInterfaceNumber: 0, BNumEndpoints: 3, BInterfaceClass: 3}},
			Endpoints: []usbhost.EndpointDescriptor{
				{BEndpointAddress: 0x81, BmAttributes: usbhost.EndpointTypeInterrupt},
				{BEndpointAddress: 0x02, BmAttributes: usbhost.EndpointTypeInterrupt},
			},
			BdaddrFeature: []byte{0xF5, 0x00, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		}
		raw := make([]byte, ds3.RawInputOffset+20)
		raw[0] = 0x01
		return desc, dev, raw, nil

	case "ds4":
		desc := usbhost.DeviceDescriptor{IDVendor: usbhost.SonyVID, IDProduct: ds4.ProductID}
		dev := simhost.Device{
			Desc:   desc,
			Config: usbhost.ConfigDescriptor{BConfigurationValue: 1, BNumInterfaces: 1},
			Endpoints: []usbhost.EndpointDescriptor{
				{BEndpointAddress: 0x84, BmAttributes: usbhost.EndpointTypeInterrupt},
				{BEndpointAddress: 0x03, BmAttributes: usbhost.EndpointTypeInterrupt},
			},
			BdaddrFeature: []byte{0x09, 0x00, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01},
		}
		raw := make([]byte, 20)
		raw[0], raw[1], raw[2], raw[3] = 0x80, 0x80, 0x80, 0x80
		raw[4] = byte(ds4.DPadNeutral)
		return desc, dev, raw, nil

	default:
		return usbhost.DeviceDescriptor{}, simhost.Device{}, nil, fmt.Errorf("simulate: unknown model %q", s.Model)
	}
}
