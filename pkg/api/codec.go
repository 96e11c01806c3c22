package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec кодирует снимки для отправки по сокету
type Codec string

const (
	CodecJSON    Codec = "json"
	CodecMsgpack Codec = "msgpack"
)

// ParseCodec возвращает кодек по имени, пустая строка - JSON
func ParseCodec(name string) (Codec, error) {
	switch Codec(name) {
	case "", CodecJSON:
		return CodecJSON, nil
	case CodecMsgpack:
		return CodecMsgpack, nil
	default:
		return "", fmt.Errorf("unknown codec %q", name)
	}
}

// Binary сообщает, нужен ли бинарный фрейм websocket
func (c Codec) Binary() bool { return c == CodecMsgpack }

// Marshal кодирует значение. Для msgpack используются json-теги,
// чтобы имена полей совпадали в обоих форматах.
func (c Codec) Marshal(v any) ([]byte, error) {
	if c != CodecMsgpack {
		return json.Marshal(v)
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.SetOmitEmpty(true)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("msgpack encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal декодирует данные в v
func (c Codec) Unmarshal(data []byte, v any) error {
	if c != CodecMsgpack {
		return json.Unmarshal(data, v)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("msgpack decode: %w", err)
	}
	return nil
}
