// Package wave holds the generated wire contract of wave.v1.WaveService
// (proto/wave/v1/wave.proto) plus small helpers shared by its users.
package wave

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/oggyb/waveos --go-grpc_out=../../.. --go-grpc_opt=module=github.com/oggyb/waveos wave/v1/wave.proto

import "time"

// TimeLayout is RFC 3339 with millisecond precision, the precision the store keeps.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
