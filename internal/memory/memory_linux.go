// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package memory

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// getInfo reads the peak RSS from getrusage (ru_maxrss is kilobytes on
// Linux) and the current RSS from /proc/self/status.
func getInfo() Info {
	var info Info

	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil && ru.Maxrss > 0 {
		info.PeakRSSKB = uint64(ru.Maxrss)
	}

	f, err := os.Open("/proc/self/status")
	if err != nil {
		return info
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "VmRSS:"))
		if len(fields) > 0 {
			if kb, err := strconv.ParseUint(fields[0], 10, 64); err == nil {
				info.CurrentRSSKB = kb
			}
		}
		break
	}

	return info
}
