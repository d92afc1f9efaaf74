package header_set

import (
	"fmt"
	"io"
	"strings"

	cgiErrors "github.com/Motmedel/cgi_go/pkg/http/cgi/errors"
)

type Entry struct {
	Name  string
	Value string
}

// HeaderSet is an ordered list of header fields. Names may repeat; order is emission order.
type HeaderSet []Entry

func New(entries ...Entry) HeaderSet {
	return append(HeaderSet(nil), entries...)
}

func (headerSet *HeaderSet) Add(name, value string) {
	*headerSet = append(*headerSet, Entry{Name: name, Value: value})
}

// Get returns the value of the first field whose name matches case-insensitively.
func (headerSet HeaderSet) Get(name string) (string, bool) {
	for _, entry := range headerSet {
		if strings.EqualFold(entry.Name, name) {
			return entry.Value, true
		}
	}
	return "", false
}

func (headerSet HeaderSet) Values(name string) []string {
	var values []string
	for _, entry := range headerSet {
		if strings.EqualFold(entry.Name, name) {
			values = append(values, entry.Value)
		}
	}
	return values
}

// Validate rejects fields that would break message framing.
func (headerSet HeaderSet) Validate() error {
	for _, entry := range headerSet {
		if entry.Name == "" {
			return &cgiErrors.InvalidHeaderError{Value: entry.Value, Reason: "empty name"}
		}
		if strings.ContainsAny(entry.Name, "\r\n:") || strings.TrimSpace(entry.Name) != entry.Name {
			return &cgiErrors.InvalidHeaderError{
				Name:   entry.Name,
				Value:  entry.Value,
				Reason: fmt.Sprintf("bad character in name %q", entry.Name),
			}
		}
		if strings.ContainsAny(entry.Value, "\r\n") {
			return &cgiErrors.InvalidHeaderError{
				Name:   entry.Name,
				Value:  entry.Value,
				Reason: fmt.Sprintf("line break in value of %q", entry.Name),
			}
		}
	}
	return nil
}

// Bytes renders the header block including the terminating blank line.
func (headerSet HeaderSet) Bytes() []byte {
	var builder strings.Builder
	for _, entry := range headerSet {
		builder.WriteString(entry.Name)
		builder.WriteString(": ")
		builder.WriteString(entry.Value)
		builder.WriteString("\r\n")
	}
	builder.WriteString("\r\n")
	return []byte(builder.String())
}

func (headerSet HeaderSet) WriteTo(writer io.Writer) (int64, error) {
	n, err := writer.Write(headerSet.Bytes())
	return int64(n), err
}
