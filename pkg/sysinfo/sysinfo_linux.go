//go:build linux

package sysinfo

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func fillMemory(info *Info) error {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return fmt.Errorf("sysinfo: %w", err)
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	info.TotalMemory = uint64(si.Totalram) * unit
	info.FreeMemory = uint64(si.Freeram) * unit
	info.Uptime = time.Duration(si.Uptime) * time.Second
	return nil
}
