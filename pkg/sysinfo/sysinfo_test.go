package sysinfo

import (
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	info, err := Snapshot()
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS, info.Platform)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, runtime.NumCPU(), info.CPUs)
	assert.LessOrEqual(t, info.FreeMemory, info.TotalMemory)

	if runtime.GOOS == "linux" {
		assert.Positive(t, info.TotalMemory)
		assert.Positive(t, info.Uptime)
	}
}

func TestInfoJSON(t *testing.T) {
	info := Info{
		Platform:    "linux",
		Arch:        "amd64",
		CPUs:        8,
		TotalMemory: 1024,
		FreeMemory:  512,
		Uptime:      90 * time.Second,
	}

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"platform":"linux","arch":"amd64","cpus":8,"totalmem":1024,"freemem":512,"uptime":90}`, string(data))

	var decoded Info
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, info, decoded)
}
