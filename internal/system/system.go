package system

import (
	"os/exec"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
)

// InitResourceLimits raises the open-file limit so long encoding runs do
// not hit the default soft limit on macOS/Linux.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn().Err(err).Msg("could not read open-file limit")
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warn().Err(err).Msg("could not raise open-file limit")
	} else {
		log.Debug().Uint64("limit", rLimit.Cur).Msg("open-file limit raised")
	}
}

// GetBestH264Encoder probes ffmpeg for hardware H.264 encoders, preferring
// VideoToolbox (macOS), then NVENC, then software libx264.
func GetBestH264Encoder() (string, string) {
	encoders := []struct {
		name string
		args string
	}{
		{"h264_videotoolbox", ""},
		{"h264_nvenc", ""},
	}

	for _, enc := range encoders {
		cmd := exec.Command("ffmpeg", "-encoders")
		out, err := cmd.CombinedOutput()
		if err == nil && strings.Contains(string(out), enc.name) {
			return enc.name, enc.args
		}
	}

	return "libx264", ""
}
