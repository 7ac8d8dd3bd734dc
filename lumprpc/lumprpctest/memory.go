// Package lumprpctest provides an in-memory lump store and helpers to serve it
// over gRPC in tests.
package lumprpctest

import (
	"context"
	"slices"
	"sync"

	"github.com/sagarc03/lumpctl"
	"github.com/sagarc03/lumpctl/lumprpc"
)

type device struct {
	order []lumpctl.LumpID
	data  map[lumpctl.LumpID]lumpctl.LumpData
}

// Memory implements lumprpc.Backend in memory. Lumps are listed in insertion
// order. Requests for devices that were never added fail with
// lumprpc.ErrUnknownDevice.
type Memory struct {
	mu      sync.Mutex
	devices map[lumpctl.DeviceID]*device
	err     error
	calls   map[string]int
}

// Option configures a Memory.
type Option func(*Memory)

// WithDevices pre-creates empty devices.
func WithDevices(ids ...lumpctl.DeviceID) Option {
	return func(m *Memory) {
		for _, id := range ids {
			m.devices[id] = newDevice()
		}
	}
}

// New creates an empty in-memory store.
func New(opts ...Option) *Memory {
	m := &Memory{
		devices: make(map[lumpctl.DeviceID]*device),
		calls:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func newDevice() *device {
	return &device{data: make(map[lumpctl.LumpID]lumpctl.LumpData)}
}

// Put stores data under id, creating the device if needed.
func (m *Memory) Put(dev lumpctl.DeviceID, id lumpctl.LumpID, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.devices[dev]
	if !ok {
		d = newDevice()
		m.devices[dev] = d
	}
	if _, exists := d.data[id]; !exists {
		d.order = append(d.order, id)
	}
	d.data[id] = append(lumpctl.LumpData(nil), data...)
}

// FailWith makes every following request fail with err. A nil err restores
// normal operation.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times the named operation was invoked
// ("ListLumps", "GetLump", "HeadLump", "DeleteLump").
func (m *Memory) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// TotalCalls returns the number of requests served.
func (m *Memory) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *Memory) begin(op string, dev lumpctl.DeviceID) (*device, error) {
	m.calls[op]++
	if m.err != nil {
		return nil, m.err
	}
	d, ok := m.devices[dev]
	if !ok {
		return nil, lumprpc.ErrUnknownDevice
	}
	return d, nil
}

func (m *Memory) ListLumps(_ context.Context, dev lumpctl.DeviceID) ([]lumpctl.LumpID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.begin("ListLumps", dev)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.order), nil
}

func (m *Memory) GetLump(_ context.Context, dev lumpctl.DeviceID, id lumpctl.LumpID) (lumpctl.LumpData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.begin("GetLump", dev)
	if err != nil {
		return nil, err
	}
	data, ok := d.data[id]
	if !ok {
		return nil, lumprpc.ErrLumpNotFound
	}
	return append(lumpctl.LumpData(nil), data...), nil
}

func (m *Memory) HeadLump(_ context.Context, dev lumpctl.DeviceID, id lumpctl.LumpID) (lumpctl.LumpHeader, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.begin("HeadLump", dev)
	if err != nil {
		return lumpctl.LumpHeader{}, err
	}
	data, ok := d.data[id]
	if !ok {
		return lumpctl.LumpHeader{}, lumprpc.ErrLumpNotFound
	}
	return lumpctl.LumpHeader{ApproximateDataSize: uint32(len(data))}, nil
}

func (m *Memory) DeleteLump(_ context.Context, dev lumpctl.DeviceID, id lumpctl.LumpID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := m.begin("DeleteLump", dev)
	if err != nil {
		return false, err
	}
	if _, ok := d.data[id]; !ok {
		return false, nil
	}
	delete(d.data, id)
	d.order = slices.DeleteFunc(d.order, func(x lumpctl.LumpID) bool { return x == id })
	return true, nil
}
