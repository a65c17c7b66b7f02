// Package usbhost declares the collaborator surface this module expects
// from the USB host-controller driver. The controller itself — device
// enumeration at the bus level, URB submission, endpoint scheduling —
// lives outside this module; only the interfaces and wire constants it
// must satisfy are defined here.
package usbhost

// DeviceID opaquely identifies a device bound by the host stack.
type DeviceID int64

// NoDevice is the sentinel for "no device bound".
const NoDevice DeviceID = -1

// Endpoint opaquely identifies an opened endpoint handle.
type Endpoint int32

// NoEndpoint is the sentinel for "endpoint not opened".
const NoEndpoint Endpoint = -1

// SonyVID is the USB vendor ID shared by DualShock 3 and DualShock 4 pads.
const SonyVID uint16 = 0x054C

// RequestType composes the bmRequestType byte of a control transfer.
type RequestType uint8

const (
	RequestDirectionIn  = RequestType(0b1000_0000)
	RequestDirectionOut = RequestType(0b0000_0000)

	RequestTypeStandard = RequestType(0b0000_0000)
	RequestTypeClass    = RequestType(0b0010_0000)

	RequestRecipientDevice    = RequestType(0b0000_0000)
	RequestRecipientInterface = RequestType(0b0000_0001)
)

// Standard USB request codes.
const (
	RequestGetDescriptor    = 0x06
	RequestSetConfiguration = 0x09
)

// HID class request codes (USB HID 1.11 §7.2).
const (
	HIDGetReport = 0x01
	HIDSetReport = 0x09
)

// HID report types, packed into the high byte of wValue.
const (
	HIDReportTypeInput   = 0x01
	HIDReportTypeOutput  = 0x02
	HIDReportTypeFeature = 0x03
)

// Descriptor type codes.
const (
	DescTypeDevice    = 0x01
	DescTypeConfig    = 0x02
	DescTypeInterface = 0x04
	DescTypeEndpoint  = 0x05
)

// Endpoint descriptor bit layout.
const (
	EndpointDirectionIn  = 0x80
	EndpointNumberMask   = 0x0F
	EndpointTypeMask     = 0x03
	EndpointTypeInterrupt = 0x03
)

// DeviceDescriptor is the standard 18-byte USB device descriptor, the
// fields this module reads to identify a pad model.
type DeviceDescriptor struct {
	BcdUSB          uint16
	BDeviceClass    uint8
	BDeviceSubClass uint8
	BDeviceProtocol uint8
	BMaxPacketSize0 uint8
	IDVendor        uint16
	IDProduct       uint16
	BcdDevice       uint16
}

// ConfigDescriptor is the standard 9-byte configuration descriptor header.
type ConfigDescriptor struct {
	BConfigurationValue uint8
	BNumInterfaces      uint8
}

// InterfaceDescriptor is the standard 9-byte interface descriptor.
type InterfaceDescriptor struct {
	BInterfaceNumber uint8
	BNumEndpoints    uint8
	BInterfaceClass  uint8
}

// EndpointDescriptor is the standard 7-byte endpoint descriptor.
type EndpointDescriptor struct {
	BEndpointAddress uint8
	BmAttributes     uint8
	WMaxPacketSize   uint16
}

// IsIn reports whether the endpoint's direction bit is IN.
func (e EndpointDescriptor) IsIn() bool {
	return e.BEndpointAddress&EndpointDirectionIn != 0
}

// IsInterrupt reports whether the endpoint's transfer type is interrupt.
func (e EndpointDescriptor) IsInterrupt() bool {
	return e.BmAttributes&EndpointTypeMask == EndpointTypeInterrupt
}

// TransferKind distinguishes the four transfer shapes the Transfer
// Serializer (component B) submits.
type TransferKind uint8

const (
	ControlOut TransferKind = iota
	ControlIn
	InterruptOut
	InterruptIn
)

// ControlRequest carries the setup packet fields for a control transfer.
// Unused for interrupt transfers.
type ControlRequest struct {
	BmRequestType RequestType
	BRequest      uint8
	WValue        uint16
	WIndex        uint16
}

// TransferCallback is invoked by the controller on transfer completion.
// err is the completion result (distinct from Submit's return value,
// which only reports submit-time rejection).
type TransferCallback func(err error, n int)

// Controller is the external USB host-controller driver collaborator.
// An implementation is supplied by the host stack; every entry point in
// this module that talks to a physical pad does so only through this
// interface.
type Controller interface {
	OpenControl(dev DeviceID) (Endpoint, error)
	OpenEndpoint(dev DeviceID, desc EndpointDescriptor) (Endpoint, error)
	CloseEndpoint(ep Endpoint) error

	ReadDeviceDescriptor(dev DeviceID) (DeviceDescriptor, error)
	ReadConfigDescriptor(dev DeviceID) (ConfigDescriptor, []InterfaceDescriptor, []EndpointDescriptor, error)

	// Submit begins an asynchronous transfer and invokes cb on completion
	// with the result and number of bytes transferred. It returns the
	// submit-time error only; a nil return does not mean the transfer
	// succeeded, only that it was accepted for processing.
	Submit(ep Endpoint, kind TransferKind, req ControlRequest, buf []byte, cb TransferCallback) error

	// SetConfiguration issues SET_CONFIGURATION and invokes cb on completion.
	SetConfiguration(dev DeviceID, value uint8, cb func(error)) error
}
