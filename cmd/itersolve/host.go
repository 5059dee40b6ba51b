// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

type feature struct {
	name string
	ok   bool
}

// hostInfo describes the machine the speedup was measured on.
func hostInfo() string {
	return fmt.Sprintf("host %s/%s cpus=%d gomaxprocs=%d features=%s",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.GOMAXPROCS(0),
		strings.Join(cpuFeatures(), ","))
}

func cpuFeatures() []string {
	var fs []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		fs = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		// ASIMD is always present on ARMv8.
		fs = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fphp", cpu.ARM64.HasFPHP},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	names := lo.FilterMap(fs, func(f feature, _ int) (string, bool) {
		return f.name, f.ok
	})
	if len(names) == 0 {
		return []string{"none"}
	}

	return names
}
