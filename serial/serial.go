// Package serial provides deterministic serializers for guid.FingerprintOf.
//
// Each serializer produces the same bytes for equal input on every call,
// which is the only property the fingerprint facade relies on. Map keys are
// always sorted.
package serial

import (
	"bytes"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// Func is the serializer shape accepted by guid.FingerprintOf.
type Func[T any] func(T) ([]byte, error)

// ErrUnknownCodec is returned by ByName for unsupported codec names.
var ErrUnknownCodec = errors.New("serial: unknown codec")

var sortedJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// JSON encodes v as compact JSON with sorted object keys.
func JSON[T any](v T) ([]byte, error) {
	return sortedJSON.Marshal(v)
}

// MsgPack encodes v as MessagePack with sorted map keys.
func MsgPack[T any](v T) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).SortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAML encodes v as a YAML document. yaml.v3 emits map keys in sorted order.
func YAML[T any](v T) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var deterministicProto = proto.MarshalOptions{Deterministic: true}

// Proto marshals m with deterministic map ordering. Deterministic here means
// stable for one binary; it is not a canonical encoding across versions.
func Proto[M proto.Message](m M) ([]byte, error) {
	return deterministicProto.Marshal(m)
}

// ByName returns the serializer registered under codec.
// Valid names are json, msgpack and yaml.
func ByName[T any](codec string) (Func[T], error) {
	switch codec {
	case "json", "":
		return JSON[T], nil
	case "msgpack":
		return MsgPack[T], nil
	case "yaml":
		return YAML[T], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
}

// Codecs lists the names accepted by ByName.
func Codecs() []string {
	return []string{"json", "msgpack", "yaml"}
}
