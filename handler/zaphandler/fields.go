package zaphandler

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// appendFields encodes every field once and appends " key=value" pairs
// in first-seen key order. Later fields with the same key win.
func appendFields(buf []byte, groups ...[]zapcore.Field) []byte {
	enc := zapcore.NewMapObjectEncoder()
	var keys []string
	seen := make(map[string]struct{})
	for _, fields := range groups {
		for _, f := range fields {
			f.AddTo(enc)
			if _, ok := seen[f.Key]; !ok {
				seen[f.Key] = struct{}{}
				keys = append(keys, f.Key)
			}
		}
	}

	for _, k := range keys {
		v, ok := enc.Fields[k]
		if !ok {
			// zap.Skip and other no-op fields encode nothing
			continue
		}
		buf = append(buf, ' ')
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = fmt.Append(buf, v)
	}
	return buf
}
