// Package simhost is a fake usbhost.Controller used by the ds34ctl
// "simulate" command to exercise the module end-to-end without
// physical hardware. It is not part of the core: it stands in for the
// real USB host-controller driver, one of the external collaborators
// the core only ever talks to through the usbhost.Controller interface.
package simhost

import (
	"errors"
	"sync"

	"github.com/ds3ds4/ds34drv/usbhost"
)

// Device describes a fake pad the Controller will report on enumeration.
type Device struct {
	Desc       usbhost.DeviceDescriptor
	Config     usbhost.ConfigDescriptor
	Interfaces []usbhost.InterfaceDescriptor
	Endpoints  []usbhost.EndpointDescriptor

	// BdaddrFeature is returned verbatim by a control-IN GET_REPORT
	// FEATURE request for the bdaddr report ID.
	BdaddrFeature []byte
}

// Controller is an in-memory stand-in for a real USB host controller.
// All transfer completions are dispatched on a separate goroutine, one
// call stack removed from Submit/SetConfiguration, matching the real
// host stack's threading model (the core's lock discipline depends on
// completions never re-entering the submitting call synchronously).
type Controller struct {
	mu sync.Mutex

	devices     map[usbhost.DeviceID]*Device
	endpointDev map[usbhost.Endpoint]usbhost.DeviceID
	nextEP      usbhost.Endpoint

	// LastOutput records the most recent bytes written to each endpoint,
	// for the simulate command to report back to the operator.
	LastOutput map[usbhost.Endpoint][]byte

	inputQueue map[usbhost.DeviceID][][]byte
}

// New constructs an empty Controller.
func New() *Controller {
	return &Controller{
		devices:     make(map[usbhost.DeviceID]*Device),
		endpointDev: make(map[usbhost.Endpoint]usbhost.DeviceID),
		LastOutput:  make(map[usbhost.Endpoint][]byte),
		inputQueue:  make(map[usbhost.DeviceID][][]byte),
	}
}

// AddDevice registers a fake device under id.
func (c *Controller) AddDevice(id usbhost.DeviceID, dev Device) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.devices[id] = &dev
}

// QueueInput appends a raw input report dev will return on its next
// interrupt-IN submit.
func (c *Controller) QueueInput(id usbhost.DeviceID, raw []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputQueue[id] = append(c.inputQueue[id], raw)
}

func (c *Controller) OpenControl(dev usbhost.DeviceID) (usbhost.Endpoint, error) {
	return c.openEndpoint(dev)
}

func (c *Controller) OpenEndpoint(dev usbhost.DeviceID, _ usbhost.EndpointDescriptor) (usbhost.Endpoint, error) {
	return c.openEndpoint(dev)
}

func (c *Controller) openEndpoint(dev usbhost.DeviceID) (usbhost.Endpoint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.devices[dev]; !ok {
		return usbhost.NoEndpoint, errors.New("simhost: unknown device")
	}
	ep := c.nextEP
	c.nextEP++
	c.endpointDev[ep] = dev
	return ep, nil
}

func (c *Controller) CloseEndpoint(ep usbhost.Endpoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.endpointDev, ep)
	delete(c.LastOutput, ep)
	return nil
}

func (c *Controller) ReadDeviceDescriptor(dev usbhost.DeviceID) (usbhost.DeviceDescriptor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.devices[dev]
	if !ok {
		return usbhost.DeviceDescriptor{}, errors.New("simhost: unknown device")
	}
	return d.Desc, nil
}

func (c *Controller) ReadConfigDescriptor(dev usbhost.DeviceID) (usbhost.ConfigDescriptor, []usbhost.InterfaceDescriptor, []usbhost.EndpointDescriptor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.devices[dev]
	if !ok {
		return usbhost.ConfigDescriptor{}, nil, nil, errors.New("simhost: unknown device")
	}
	return d.Config, d.Interfaces, d.Endpoints, nil
}

func (c *Controller) Submit(ep usbhost.Endpoint, kind usbhost.TransferKind, _ usbhost.ControlRequest, buf []byte, cb usbhost.TransferCallback) error {
	c.mu.Lock()
	dev, ok := c.endpointDev[ep]
	c.mu.Unlock()
	if !ok {
		return errors.New("simhost: endpoint not open")
	}

	switch kind {
	case usbhost.ControlOut, usbhost.InterruptOut:
		out := append([]byte(nil), buf...)
		c.mu.Lock()
		c.LastOutput[ep] = out
		c.mu.Unlock()
		go cb(nil, len(buf))

	case usbhost.ControlIn:
		c.mu.Lock()
		d := c.devices[dev]
		var src []byte
		if d != nil {
			src = d.BdaddrFeature
		}
		n := copy(buf, src)
		c.mu.Unlock()
		go cb(nil, n)

	case usbhost.InterruptIn:
		c.mu.Lock()
		q := c.inputQueue[dev]
		var raw []byte
		if len(q) > 0 {
			raw = q[0]
			c.inputQueue[dev] = q[1:]
		}
		c.mu.Unlock()
		if raw == nil {
			go cb(errors.New("simhost: no queued input report"), 0)
			return nil
		}
		n := copy(buf, raw)
		go cb(nil, n)

	default:
		return errors.New("simhost: unknown transfer kind")
	}
	return nil
}

func (c *Controller) SetConfiguration(dev usbhost.DeviceID, _ uint8, cb func(error)) error {
	c.mu.Lock()
	_, ok := c.devices[dev]
	c.mu.Unlock()
	if !ok {
		return errors.New("simhost: unknown device")
	}
	go cb(nil)
	return nil
}
