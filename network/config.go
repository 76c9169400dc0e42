package network

import (
	"time"
)

// Config holds sensor server configuration
type Config struct {
	// Address to bind, ":0" picks a free port
	Address string

	// Timing
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	HandshakeTimeout time.Duration
	ShutdownTimeout  time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int

	// MaxMessageSize caps one sensor frame, larger frames close the connection
	MaxMessageSize int64
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:          ":7777",
		ReadTimeout:      15 * time.Second,
		WriteTimeout:     5 * time.Second,
		IdleTimeout:      60 * time.Second,
		HandshakeTimeout: 5 * time.Second,
		ShutdownTimeout:  2 * time.Second,
		ReadBufferSize:   2048,
		WriteBufferSize:  2048,
		MaxMessageSize:   1024,
	}
}

// DebugConfig returns defaults bound to addr
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}
