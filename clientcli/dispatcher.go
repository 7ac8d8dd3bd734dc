package clientcli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sagarc03/lumpctl"
	"github.com/sagarc03/lumpctl/engine"
	"github.com/sagarc03/lumpctl/filesystem"
)

// LumpClient issues lump store requests. Every method returns immediately;
// the RPC completes on the engine and resolves the returned Pending.
// *lumprpc.Client implements it.
type LumpClient interface {
	ListLumps(device lumpctl.DeviceID) *engine.Pending[[]lumpctl.LumpID]
	GetLump(device lumpctl.DeviceID, id lumpctl.LumpID) *engine.Pending[*lumpctl.LumpData]
	HeadLump(device lumpctl.DeviceID, id lumpctl.LumpID) *engine.Pending[*lumpctl.LumpHeader]
	DeleteLump(device lumpctl.DeviceID, id lumpctl.LumpID) *engine.Pending[bool]
}

// Request is a validated command invocation. Build it with NewRequest.
type Request struct {
	Command lumpctl.Command
	Device  lumpctl.DeviceID
	LumpID  lumpctl.LumpID

	// OutFile, when set on a get, saves the value there instead of
	// printing it.
	OutFile string

	hasLumpID bool
}

// NewRequest parses the command arguments. Get, Head and Delete need
// lumpText; List ignores it. Every failure is a *lumpctl.ArgumentError.
func NewRequest(cmd lumpctl.Command, device, lumpText string) (Request, error) {
	if !cmd.IsValid() {
		return Request{}, &lumpctl.ArgumentError{Field: "command", Value: cmd.String(), Err: lumpctl.ErrUnknownCommand}
	}

	dev, err := lumpctl.ParseDeviceID(device)
	if err != nil {
		return Request{}, err
	}

	req := Request{Command: cmd, Device: dev}
	if !cmd.RequiresLumpID() {
		return req, nil
	}

	if lumpText == "" {
		return Request{}, &lumpctl.ArgumentError{
			Field: "lumpid",
			Err:   fmt.Errorf("%w for %s", lumpctl.ErrLumpIDRequired, cmd),
		}
	}

	id, err := lumpctl.ParseLumpID(lumpText)
	if err != nil {
		return Request{}, err
	}
	req.LumpID = id
	req.hasLumpID = true

	return req, nil
}

// Dispatcher runs one request at a time against a LumpClient.
type Dispatcher struct {
	client LumpClient
	logger *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a Dispatcher for client.
func NewDispatcher(client LumpClient, opts ...DispatcherOption) (*Dispatcher, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	d := &Dispatcher{client: client, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dispatch issues the request and blocks until its single RPC resolves.
// An absent lump is a successful result with Found or Removed false.
func (d *Dispatcher) Dispatch(req Request) (Result, error) {
	if req.Command.RequiresLumpID() && !req.hasLumpID {
		return nil, &lumpctl.ArgumentError{Field: "lumpid", Err: lumpctl.ErrLumpIDRequired}
	}

	d.logger.Debug("dispatch", "command", req.Command, "device", req.Device)

	switch req.Command {
	case lumpctl.CommandList:
		lumps, err := engine.Wait(d.client.ListLumps(req.Device))
		if err != nil {
			return nil, err
		}
		return &ListResult{Device: req.Device, Lumps: lumps}, nil

	case lumpctl.CommandGet:
		data, err := engine.Wait(d.client.GetLump(req.Device, req.LumpID))
		if err != nil {
			return nil, err
		}
		r := &GetResult{Device: req.Device, LumpID: req.LumpID}
		if data != nil {
			r.Data = *data
			r.Found = true
		}
		return r, nil

	case lumpctl.CommandHead:
		header, err := engine.Wait(d.client.HeadLump(req.Device, req.LumpID))
		if err != nil {
			return nil, err
		}
		r := &HeadResult{Device: req.Device, LumpID: req.LumpID}
		if header != nil {
			r.Header = *header
			r.Found = true
		}
		return r, nil

	case lumpctl.CommandDelete:
		removed, err := engine.Wait(d.client.DeleteLump(req.Device, req.LumpID))
		if err != nil {
			return nil, err
		}
		return &DeleteResult{Device: req.Device, LumpID: req.LumpID, Removed: removed}, nil

	default:
		return nil, &lumpctl.ArgumentError{Field: "command", Value: req.Command.String(), Err: lumpctl.ErrUnknownCommand}
	}
}

// Execute dispatches req and renders the result to w. A found value of a
// get with OutFile set is written to that file and reported as a SaveResult.
func (d *Dispatcher) Execute(ctx context.Context, w io.Writer, f Formatter, req Request) error {
	res, err := d.Dispatch(req)
	if err != nil {
		return err
	}

	if get, ok := res.(*GetResult); ok && get.Found && req.OutFile != "" {
		saved, err := filesystem.SaveFile(ctx, req.OutFile, bytes.NewReader(get.Data), d.logger)
		if err != nil {
			return fmt.Errorf("save %s: %w", get.LumpID, err)
		}
		d.logger.Info("value saved", "lump_id", get.LumpID, "path", saved.Path, "bytes", saved.BytesWritten)
		res = &SaveResult{Device: get.Device, LumpID: get.LumpID, File: saved}
	}

	return Format(w, f, res)
}
