package clientcli

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sagarc03/lumpctl"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by NewFormatter.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Formatter formats results for output.
type Formatter interface {
	FormatList(w io.Writer, result *ListResult) error
	FormatGet(w io.Writer, result *GetResult) error
	FormatHead(w io.Writer, result *HeadResult) error
	FormatDelete(w io.Writer, result *DeleteResult) error
	FormatSave(w io.Writer, result *SaveResult) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the formatter for an output name (text, json or yaml).
func NewFormatter(output string) (Formatter, error) {
	switch strings.ToLower(output) {
	case OutputText, "":
		return &HumanFormatter{}, nil
	case OutputJSON:
		return &JSONFormatter{}, nil
	case OutputYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, &lumpctl.ArgumentError{Field: "output", Value: output, Err: ErrUnknownOutput}
	}
}

// Format renders r with f.
func Format(w io.Writer, f Formatter, r Result) error {
	switch r := r.(type) {
	case *ListResult:
		return f.FormatList(w, r)
	case *GetResult:
		return f.FormatGet(w, r)
	case *HeadResult:
		return f.FormatHead(w, r)
	case *DeleteResult:
		return f.FormatDelete(w, r)
	case *SaveResult:
		return f.FormatSave(w, r)
	default:
		return fmt.Errorf("clientcli: unsupported result %T", r)
	}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct{}

// FormatList prints a count line followed by one lump id per line.
func (f *HumanFormatter) FormatList(w io.Writer, result *ListResult) error {
	if _, err := fmt.Fprintf(w, "%d lump(s)\n", len(result.Lumps)); err != nil {
		return err
	}
	for _, id := range result.Lumps {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

// FormatGet prints the raw value, terminated by a newline.
func (f *HumanFormatter) FormatGet(w io.Writer, result *GetResult) error {
	if !result.Found {
		return notFound(w, result.LumpID)
	}

	if _, err := w.Write(result.Data); err != nil {
		return err
	}
	if n := len(result.Data); n == 0 || result.Data[n-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// FormatHead prints the lump header.
func (f *HumanFormatter) FormatHead(w io.Writer, result *HeadResult) error {
	if !result.Found {
		return notFound(w, result.LumpID)
	}

	size := result.Header.ApproximateDataSize
	_, err := fmt.Fprintf(w, "%s approximate_data_size=%d (%s)\n", result.LumpID, size, formatSize(int64(size)))
	return err
}

// FormatDelete reports whether the lump was removed.
func (f *HumanFormatter) FormatDelete(w io.Writer, result *DeleteResult) error {
	var err error
	if result.Removed {
		_, err = fmt.Fprintf(w, "Removed %s\n", result.LumpID)
	} else {
		_, err = fmt.Fprintf(w, "There is no %s\n", result.LumpID)
	}
	return err
}

// FormatSave reports where a value was written.
func (f *HumanFormatter) FormatSave(w io.Writer, result *SaveResult) error {
	_, err := fmt.Fprintf(w, "Saved %s -> %s (%s)\n", result.LumpID, result.File.Path, formatSize(result.File.BytesWritten))
	return err
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

func notFound(w io.Writer, id lumpctl.LumpID) error {
	_, err := fmt.Fprintf(w, "%s does not exist\n", id)
	return err
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatList formats list results as JSON.
func (f *JSONFormatter) FormatList(w io.Writer, result *ListResult) error {
	return writeJSON(w, newListView(result))
}

// FormatGet formats a fetched value as JSON, base64 encoded.
func (f *JSONFormatter) FormatGet(w io.Writer, result *GetResult) error {
	return writeJSON(w, newGetView(result))
}

// FormatHead formats lump metadata as JSON.
func (f *JSONFormatter) FormatHead(w io.Writer, result *HeadResult) error {
	return writeJSON(w, newHeadView(result))
}

// FormatDelete formats a delete result as JSON.
func (f *JSONFormatter) FormatDelete(w io.Writer, result *DeleteResult) error {
	return writeJSON(w, newDeleteView(result))
}

// FormatSave formats a save result as JSON.
func (f *JSONFormatter) FormatSave(w io.Writer, result *SaveResult) error {
	return writeJSON(w, newSaveView(result))
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	return writeJSON(w, errorView{Error: err.Error()})
}

// YAMLFormatter outputs YAML documents with the same fields as JSONFormatter.
type YAMLFormatter struct{}

func (f *YAMLFormatter) FormatList(w io.Writer, result *ListResult) error {
	return writeYAML(w, newListView(result))
}

func (f *YAMLFormatter) FormatGet(w io.Writer, result *GetResult) error {
	return writeYAML(w, newGetView(result))
}

func (f *YAMLFormatter) FormatHead(w io.Writer, result *HeadResult) error {
	return writeYAML(w, newHeadView(result))
}

func (f *YAMLFormatter) FormatDelete(w io.Writer, result *DeleteResult) error {
	return writeYAML(w, newDeleteView(result))
}

func (f *YAMLFormatter) FormatSave(w io.Writer, result *SaveResult) error {
	return writeYAML(w, newSaveView(result))
}

func (f *YAMLFormatter) FormatError(w io.Writer, err error) error {
	return writeYAML(w, errorView{Error: err.Error()})
}

type listView struct {
	Device string           `json:"device" yaml:"device"`
	Count  int              `json:"count" yaml:"count"`
	Lumps  []lumpctl.LumpID `json:"lumps" yaml:"lumps"`
}

func newListView(r *ListResult) listView {
	lumps := make([]lumpctl.LumpID, len(r.Lumps))
	copy(lumps, r.Lumps)
	return listView{Device: r.Device.String(), Count: len(lumps), Lumps: lumps}
}

// Value fields are pointers so a found, empty lump still reports them.
type getView struct {
	Device    string  `json:"device" yaml:"device"`
	LumpID    string  `json:"lump_id" yaml:"lump_id"`
	Found     bool    `json:"found" yaml:"found"`
	Size      *int    `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	ContentID *string `json:"content_id,omitempty" yaml:"content_id,omitempty"`
	Value     *string `json:"value,omitempty" yaml:"value,omitempty"`
}

func newGetView(r *GetResult) getView {
	v := getView{Device: r.Device.String(), LumpID: r.LumpID.String(), Found: r.Found}
	if r.Found {
		size := len(r.Data)
		cid := lumpctl.ContentID(r.Data)
		value := base64.StdEncoding.EncodeToString(r.Data)
		v.Size, v.ContentID, v.Value = &size, &cid, &value
	}
	return v
}

type headView struct {
	Device              string  `json:"device" yaml:"device"`
	LumpID              string  `json:"lump_id" yaml:"lump_id"`
	Found               bool    `json:"found" yaml:"found"`
	ApproximateDataSize *uint32 `json:"approximate_data_size,omitempty" yaml:"approximate_data_size,omitempty"`
}

func newHeadView(r *HeadResult) headView {
	v := headView{Device: r.Device.String(), LumpID: r.LumpID.String(), Found: r.Found}
	if r.Found {
		size := r.Header.ApproximateDataSize
		v.ApproximateDataSize = &size
	}
	return v
}

type deleteView struct {
	Device  string `json:"device" yaml:"device"`
	LumpID  string `json:"lump_id" yaml:"lump_id"`
	Removed bool   `json:"removed" yaml:"removed"`
}

func newDeleteView(r *DeleteResult) deleteView {
	return deleteView{Device: r.Device.String(), LumpID: r.LumpID.String(), Removed: r.Removed}
}

type saveView struct {
	Device       string `json:"device" yaml:"device"`
	LumpID       string `json:"lump_id" yaml:"lump_id"`
	Path         string `json:"path" yaml:"path"`
	BytesWritten int64  `json:"bytes_written" yaml:"bytes_written"`
	ContentID    string `json:"content_id" yaml:"content_id"`
}

func newSaveView(r *SaveResult) saveView {
	return saveView{
		Device:       r.Device.String(),
		LumpID:       r.LumpID.String(),
		Path:         r.File.Path,
		BytesWritten: r.File.BytesWritten,
		ContentID:    r.File.ContentID,
	}
}

type errorView struct {
	Error string `json:"error" yaml:"error"`
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// formatSize formats bytes as human-readable size.
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1f TB", float64(bytes)/TB)
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
