package yxdr_test

import jsoniter "github.com/json-iterator/go"

func jsonUnmarshal(data []byte, v any) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, v) //nolint:wrapcheck
}

func jsonMarshal(v any) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v) //nolint:wrapcheck
}
