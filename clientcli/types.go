package clientcli

import (
	"github.com/sagarc03/lumpctl"
	"github.com/sagarc03/lumpctl/filesystem"
)

// Result is the outcome of one dispatched command. The set of
// implementations is closed: ListResult, GetResult, HeadResult,
// DeleteResult and SaveResult.
type Result interface {
	result()
}

// ListResult holds the lump ids of a device in server order.
type ListResult struct {
	Device lumpctl.DeviceID `json:"device" yaml:"device"`
	Lumps  []lumpctl.LumpID `json:"lumps" yaml:"lumps"`
}

// GetResult holds a fetched value. Found is false when the lump is absent.
type GetResult struct {
	Device lumpctl.DeviceID
	LumpID lumpctl.LumpID
	Data   lumpctl.LumpData
	Found  bool
}

// HeadResult holds lump metadata. Found is false when the lump is absent.
type HeadResult struct {
	Device lumpctl.DeviceID
	LumpID lumpctl.LumpID
	Header lumpctl.LumpHeader
	Found  bool
}

// DeleteResult reports whether a lump was removed.
type DeleteResult struct {
	Device  lumpctl.DeviceID `json:"device" yaml:"device"`
	LumpID  lumpctl.LumpID   `json:"lump_id" yaml:"lump_id"`
	Removed bool             `json:"removed" yaml:"removed"`
}

// SaveResult reports a fetched value written to a local file.
type SaveResult struct {
	Device lumpctl.DeviceID
	LumpID lumpctl.LumpID
	File   filesystem.SaveResult
}

func (*ListResult) result()   {}
func (*GetResult) result()    {}
func (*HeadResult) result()   {}
func (*DeleteResult) result() {}
func (*SaveResult) result()   {}
