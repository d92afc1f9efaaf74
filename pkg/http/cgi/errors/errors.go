package errors

import (
	"errors"
	"fmt"
)

var (
	ErrIo                = errors.New("io error")
	ErrEmptyChunk        = errors.New("empty chunk")
	ErrAlreadyTerminated = errors.New("response already terminated")
	ErrInvalidHeader     = errors.New("invalid header field")
	ErrProducer          = errors.New("chunk producer error")
	ErrNilEmitter        = errors.New("nil emitter")
	ErrNilRequest        = errors.New("nil request")
	ErrNilHandler        = errors.New("nil handler")
	ErrNoResponseWritten = errors.New("no response was written")
)

// IoError is a failed write or flush of the output stream.
type IoError struct {
	Op    string
	Cause error
}

func (ioError *IoError) Is(target error) bool {
	return target == ErrIo
}

func (ioError *IoError) Error() string {
	if ioError.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrIo.Error(), ioError.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrIo.Error(), ioError.Op, ioError.Cause)
}

func (ioError *IoError) GetCause() error {
	return ioError.Cause
}

func (ioError *IoError) Unwrap() error {
	return ioError.Cause
}

// EmptyChunkError is a zero-length chunk produced mid-stream. Index is zero-based.
type EmptyChunkError struct {
	Index int
}

func (emptyChunkError *EmptyChunkError) Is(target error) bool {
	return target == ErrEmptyChunk
}

func (emptyChunkError *EmptyChunkError) Error() string {
	return fmt.Sprintf("%s at index %d", ErrEmptyChunk.Error(), emptyChunkError.Index)
}

func (emptyChunkError *EmptyChunkError) GetInput() any {
	return emptyChunkError.Index
}

type AlreadyTerminatedError struct {
	State string
}

func (alreadyTerminatedError *AlreadyTerminatedError) Is(target error) bool {
	return target == ErrAlreadyTerminated
}

func (alreadyTerminatedError *AlreadyTerminatedError) Error() string {
	return ErrAlreadyTerminated.Error()
}

func (alreadyTerminatedError *AlreadyTerminatedError) GetInput() any {
	return alreadyTerminatedError.State
}

type InvalidHeaderError struct {
	Name   string
	Value  string
	Reason string
}

func (invalidHeaderError *InvalidHeaderError) Is(target error) bool {
	return target == ErrInvalidHeader
}

func (invalidHeaderError *InvalidHeaderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidHeader.Error(), invalidHeaderError.Reason)
}

func (invalidHeaderError *InvalidHeaderError) GetInput() any {
	return invalidHeaderError.Name
}

type ProducerError struct {
	Index int
	Cause error
}

func (producerError *ProducerError) Is(target error) bool {
	return target == ErrProducer
}

func (producerError *ProducerError) Error() string {
	return fmt.Sprintf("%s at index %d: %v", ErrProducer.Error(), producerError.Index, producerError.Cause)
}

func (producerError *ProducerError) GetCause() error {
	return producerError.Cause
}

func (producerError *ProducerError) Unwrap() error {
	return producerError.Cause
}
