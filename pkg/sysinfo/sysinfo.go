// Package sysinfo reports a point-in-time snapshot of the host.
package sysinfo

import (
	"encoding/json"
	"runtime"
	"time"
)

// Info is a snapshot of the host. Memory is in bytes.
type Info struct {
	Platform    string
	Arch        string
	CPUs        int
	TotalMemory uint64
	FreeMemory  uint64
	Uptime      time.Duration
}

type infoJSON struct {
	Platform    string  `json:"platform"`
	Arch        string  `json:"arch"`
	CPUs        int     `json:"cpus"`
	TotalMemory uint64  `json:"totalmem"`
	FreeMemory  uint64  `json:"freemem"`
	Uptime      float64 `json:"uptime"`
}

// MarshalJSON encodes Uptime as seconds.
func (i Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(infoJSON{
		Platform:    i.Platform,
		Arch:        i.Arch,
		CPUs:        i.CPUs,
		TotalMemory: i.TotalMemory,
		FreeMemory:  i.FreeMemory,
		Uptime:      i.Uptime.Seconds(),
	})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (i *Info) UnmarshalJSON(data []byte) error {
	var raw infoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Info{
		Platform:    raw.Platform,
		Arch:        raw.Arch,
		CPUs:        raw.CPUs,
		TotalMemory: raw.TotalMemory,
		FreeMemory:  raw.FreeMemory,
		Uptime:      time.Duration(raw.Uptime * float64(time.Second)),
	}
	return nil
}

// Snapshot reads the current host state. Nothing is cached.
func Snapshot() (Info, error) {
	info := Info{
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
	}
	if err := fillMemory(&info); err != nil {
		return info, err
	}
	return info, nil
}
