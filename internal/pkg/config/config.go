// Package config abstracts configuration access behind a small interface so
// the rest of the app never touches the underlying provider directly.
package config

import (
	"io"
	"time"
)

// Config defines typed accessors for configuration values. Implementations
// return zero values for missing keys or failed conversions.
type Config interface {
	io.Closer

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetInt64 retrieves the value for key as an int64.
	GetInt64(key string) int64

	// GetInt32 retrieves the value for key as an int32.
	GetInt32(key string) int32

	// GetUint16 retrieves the value for key as a uint16.
	GetUint16(key string) uint16

	// GetFloat64 retrieves the value for key as a float64.
	GetFloat64(key string) float64

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetBinary retrieves the value for key as a byte slice.
	// The stored value is base64 encoded.
	GetBinary(key string) []byte

	// GetArray retrieves the value for key as a string slice.
	// The stored format is <element1>,<element2>,...
	GetArray(key string) []string

	// GetMap retrieves the value for key as a string map.
	// The stored format is <key1>:<value1>,<key2>:<value2>,...
	GetMap(key string) map[string]string

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetHour retrieves the value for key as a duration in hours.
	GetHour(key string) time.Duration

	// GetDay retrieves the value for key as a duration in days (24h).
	GetDay(key string) time.Duration
}
