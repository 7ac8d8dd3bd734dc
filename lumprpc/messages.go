package lumprpc

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sagarc03/lumpctl"
)

const (
	fieldDeviceID            = "device_id"
	fieldLumpID              = "lump_id"
	fieldApproximateDataSize = "approximate_data_size"
)

func deviceRequest(device lumpctl.DeviceID) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldDeviceID: structpb.NewStringValue(string(device)),
	}}
}

func lumpRequest(device lumpctl.DeviceID, id lumpctl.LumpID) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldDeviceID: structpb.NewStringValue(string(device)),
		fieldLumpID:   structpb.NewStringValue(id.String()),
	}}
}

func decodeDevice(in *structpb.Struct) (lumpctl.DeviceID, error) {
	v, ok := in.GetFields()[fieldDeviceID]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedMessage, fieldDeviceID)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedMessage, fieldDeviceID)
	}
	return lumpctl.ParseDeviceID(s.StringValue)
}

func decodeLump(in *structpb.Struct) (lumpctl.DeviceID, lumpctl.LumpID, error) {
	device, err := decodeDevice(in)
	if err != nil {
		return "", lumpctl.LumpID{}, err
	}
	v, ok := in.GetFields()[fieldLumpID]
	if !ok {
		return "", lumpctl.LumpID{}, fmt.Errorf("%w: missing %s", ErrMalformedMessage, fieldLumpID)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", lumpctl.LumpID{}, fmt.Errorf("%w: %s is not a string", ErrMalformedMessage, fieldLumpID)
	}
	id, err := lumpctl.ParseLumpID(s.StringValue)
	if err != nil {
		return "", lumpctl.LumpID{}, err
	}
	return device, id, nil
}

func encodeLumpList(ids []lumpctl.LumpID) *structpb.ListValue {
	values := make([]*structpb.Value, len(ids))
	for i, id := range ids {
		values[i] = structpb.NewStringValue(id.String())
	}
	return &structpb.ListValue{Values: values}
}

// decodeLumpList keeps the order the server sent.
func decodeLumpList(list *structpb.ListValue) ([]lumpctl.LumpID, error) {
	ids := make([]lumpctl.LumpID, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%w: list entry %d is not a string", ErrMalformedMessage, i)
		}
		var id lumpctl.LumpID
		if err := id.UnmarshalText([]byte(s.StringValue)); err != nil {
			return nil, fmt.Errorf("%w: list entry %d: %v", ErrMalformedMessage, i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func encodeHeader(h lumpctl.LumpHeader) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldApproximateDataSize: structpb.NewNumberValue(float64(h.ApproximateDataSize)),
	}}
}

func decodeHeader(s *structpb.Struct) (lumpctl.LumpHeader, error) {
	v, ok := s.GetFields()[fieldApproximateDataSize]
	if !ok {
		return lumpctl.LumpHeader{}, fmt.Errorf("%w: missing %s", ErrMalformedMessage, fieldApproximateDataSize)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return lumpctl.LumpHeader{}, fmt.Errorf("%w: %s is not a number", ErrMalformedMessage, fieldApproximateDataSize)
	}
	size := n.NumberValue
	if size < 0 || size > math.MaxUint32 || size != math.Trunc(size) {
		return lumpctl.LumpHeader{}, fmt.Errorf("%w: %s out of range: %v", ErrMalformedMessage, fieldApproximateDataSize, size)
	}
	return lumpctl.LumpHeader{ApproximateDataSize: uint32(size)}, nil
}
