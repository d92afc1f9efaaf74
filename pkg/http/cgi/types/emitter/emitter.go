package emitter

import (
	"bufio"
	"io"
	"iter"
	"strconv"

	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
	"github.com/Motmedel/cgi_go/pkg/errors/types/nil_error"
	cgiErrors "github.com/Motmedel/cgi_go/pkg/http/cgi/errors"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter/emitter_config"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
)

type State int

const (
	StateHeadersPending State = iota
	StateBodyStreaming
	StateTerminated
	StateAborted
)

func (state State) String() string {
	switch state {
	case StateHeadersPending:
		return "headers_pending"
	case StateBodyStreaming:
		return "body_streaming"
	case StateTerminated:
		return "terminated"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

const (
	TransferEncodingHeaderName = "Transfer-Encoding"
	ChunkedTransferCoding      = "chunked"
)

var (
	crlf       = []byte("\r\n")
	terminator = []byte("0\r\n\r\n")
)

// Emitter writes one HTTP message to its output. It is single-use: after one emission, successful
// or not, further emissions fail.
type Emitter struct {
	output io.Writer
	writer *bufio.Writer
	state  State
	config *emitter_config.Config
}

func New(output io.Writer, options ...emitter_config.Option) (*Emitter, error) {
	if output == nil {
		return nil, motmedelErrors.NewWithTrace(nil_error.New("output writer"))
	}

	config := emitter_config.New(options...)

	return &Emitter{
		output: output,
		writer: bufio.NewWriterSize(output, config.BufferSize),
		state:  StateHeadersPending,
		config: config,
	}, nil
}

func (emitter *Emitter) State() State {
	return emitter.state
}

func (emitter *Emitter) fail(err error) error {
	emitter.state = StateAborted
	return err
}

func (emitter *Emitter) flush() error {
	if err := emitter.writer.Flush(); err != nil {
		return motmedelErrors.NewWithTrace(&cgiErrors.IoError{Op: "flush", Cause: err})
	}

	switch flusher := emitter.output.(type) {
	case interface{ Flush() error }:
		if err := flusher.Flush(); err != nil {
			return motmedelErrors.NewWithTrace(&cgiErrors.IoError{Op: "output flush", Cause: err})
		}
	case interface{ Flush() }:
		flusher.Flush()
	}

	return nil
}

func (emitter *Emitter) write(op string, data []byte) error {
	if _, err := emitter.writer.Write(data); err != nil {
		return motmedelErrors.NewWithTrace(&cgiErrors.IoError{Op: op, Cause: err})
	}
	return nil
}

// begin checks the state and the header fields, then buffers the header block. Nothing reaches the
// output on failure.
func (emitter *Emitter) begin(headers header_set.HeaderSet) error {
	if emitter.state != StateHeadersPending {
		return motmedelErrors.NewWithTrace(&cgiErrors.AlreadyTerminatedError{State: emitter.state.String()})
	}

	if err := headers.Validate(); err != nil {
		return motmedelErrors.NewWithTrace(err, headers)
	}

	if err := emitter.write("write headers", headers.Bytes()); err != nil {
		return emitter.fail(err)
	}

	return nil
}

// EmitFixed writes the header block followed by body verbatim. No Content-Length is added; a
// response without one is delimited by the end of the output.
func (emitter *Emitter) EmitFixed(headers header_set.HeaderSet, body []byte) error {
	if emitter == nil {
		return motmedelErrors.NewWithTrace(cgiErrors.ErrNilEmitter)
	}

	if err := emitter.begin(headers); err != nil {
		return err
	}

	if err := emitter.write("write body", body); err != nil {
		return emitter.fail(err)
	}

	if err := emitter.flush(); err != nil {
		return emitter.fail(err)
	}

	emitter.state = StateTerminated

	return nil
}

func (emitter *Emitter) chunkedHeaders(headers header_set.HeaderSet) header_set.HeaderSet {
	if !emitter.config.TransferEncodingHeader {
		return headers
	}

	if _, ok := headers.Get(TransferEncodingHeaderName); ok {
		return headers
	}

	extended := header_set.New(headers...)
	extended.Add(TransferEncodingHeaderName, ChunkedTransferCoding)
	return extended
}

func (emitter *Emitter) writeChunk(chunk []byte) error {
	var sizeBuffer [16]byte
	if err := emitter.write("write chunk size", strconv.AppendInt(sizeBuffer[:0], int64(len(chunk)), 16)); err != nil {
		return err
	}
	if err := emitter.write("write chunk size", crlf); err != nil {
		return err
	}
	if err := emitter.write("write chunk data", chunk); err != nil {
		return err
	}
	if err := emitter.write("write chunk data", crlf); err != nil {
		return err
	}

	return emitter.flush()
}

// EmitChunked writes the header block and then every chunk of producer using chunked transfer
// coding, flushing after the header block and after each chunk. The next chunk is not pulled from
// producer before the previous one has been flushed. A nil producer is an empty body.
func (emitter *Emitter) EmitChunked(headers header_set.HeaderSet, producer iter.Seq2[[]byte, error]) error {
	if emitter == nil {
		return motmedelErrors.NewWithTrace(cgiErrors.ErrNilEmitter)
	}

	if err := emitter.begin(emitter.chunkedHeaders(headers)); err != nil {
		return err
	}

	if err := emitter.flush(); err != nil {
		return emitter.fail(err)
	}

	emitter.state = StateBodyStreaming

	if producer != nil {
		index := 0
		for chunk, err := range producer {
			if err != nil {
				return emitter.fail(motmedelErrors.New(&cgiErrors.ProducerError{Index: index, Cause: err}))
			}

			if len(chunk) == 0 {
				return emitter.fail(motmedelErrors.NewWithTrace(&cgiErrors.EmptyChunkError{Index: index}))
			}

			if err := emitter.writeChunk(chunk); err != nil {
				return emitter.fail(err)
			}

			index++
		}
	}

	if err := emitter.write("write terminator", terminator); err != nil {
		return emitter.fail(err)
	}

	if err := emitter.flush(); err != nil {
		return emitter.fail(err)
	}

	emitter.state = StateTerminated

	return nil
}

// ChunksFromSlice yields each element of chunks in order.
func ChunksFromSlice(chunks ...[]byte) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for _, chunk := range chunks {
			if !yield(chunk, nil) {
				return
			}
		}
	}
}
