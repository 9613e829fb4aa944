// Package rpc は workforce の gRPC サービス定義とメッセージ型を提供します。
// メッセージは JSON コーデックで運ばれ、proto メッセージは protojson で符号化されます。
package rpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName はコンテンツサブタイプ application/grpc+json に対応するコーデック名です。
const CodecName = "json"

// Codec は gRPC メッセージを JSON で符号化します。
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal は v を JSON に符号化します。
func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rpc: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal は JSON を v に復号します。
func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("rpc: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name はコーデック名を返します。
func (Codec) Name() string {
	return CodecName
}
