package main

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/d2r2/go-logger"
	"github.com/jwenz723/7seg-easyc/easyc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig(writeConfig(t, "I2CBus: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, uint8(0x30), c.I2CAddr)
	assert.Equal(t, 0, c.I2CBus)
	assert.Equal(t, easyc.BackendD2R2, c.Transport)
	assert.Equal(t, uint8(128), c.Brightness)
	assert.Equal(t, ":8080", c.Listen)
	assert.Equal(t, logger.InfoLevel, c.Level())
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(writeConfig(t, `
I2CAddr: 0x33
I2CBus: 2
Transport: periph
PeriphBus: I2C1
Brightness: 0
Listen: 127.0.0.1:9000
LogLevel: debug
`))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		I2CAddr:    0x33,
		I2CBus:     2,
		Transport:  "periph",
		PeriphBus:  "I2C1",
		Brightness: 0,
		Listen:     "127.0.0.1:9000",
		LogLevel:   "debug",
	}, c)
	assert.Equal(t, easyc.Options{Backend: "periph", Addr: 0x33, Bus: 2, PeriphBus: "I2C1"}, c.TransportOptions())
}

func TestNewConfigErrors(t *testing.T) {
	for _, body := range []string{
		"Transport: spi\n",
		"I2CAddr: 0\n",
		"I2CAddr: 0x80\n",
		"LogLevel: loud\n",
		"I2CBus: [1\n",
	} {
		_, err := NewConfig(writeConfig(t, body))
		assert.Error(t, err, body)
	}

	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
