package rate_test

import jsoniter "github.com/json-iterator/go"

func jsonUnmarshal(data []byte, v any) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, v) //nolint:wrapcheck
}
