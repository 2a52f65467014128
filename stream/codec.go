package stream

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the wire encoding for stream messages
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name from the command line
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatMsgpack:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown stream format %q (want json or msgpack)", s)
}

// Codec encodes messages and names the websocket frame type that carries them
type Codec interface {
	Encode(v any) ([]byte, error)
	MessageType() int
}

// NewCodec returns the codec for a format
func NewCodec(f Format) Codec {
	if f == FormatMsgpack {
		return msgpackCodec{}
	}
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Encode(v any) ([]byte, error) { return json.Marshal(v) }
func (jsonCodec) MessageType() int             { return websocket.TextMessage }

// msgpackCodec reuses the json tags so both formats share field names
type msgpackCodec struct{}

func (msgpackCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (msgpackCodec) MessageType() int { return websocket.BinaryMessage }
