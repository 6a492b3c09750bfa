// SPDX-License-Identifier: EPL-2.0

// wavinfo prints the format of a WAVE stream and optionally decodes it to
// report simple statistics. Reading from stdin exercises the forward-only
// seek path; reading from a file uses random access.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sytallax/prettylog"

	"github.com/easyaspi314/aften/sample"
	"github.com/easyaspi314/aften/wav"
)

var (
	seekTo  = flag.Duration("seek", 0, "seek to this offset before decoding")
	decode  = flag.Bool("decode", false, "decode the stream and report peak amplitude")
	verbose = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(prettylog.NewHandler(&slog.HandlerOptions{Level: level}))

	in := os.Stdin
	name := "stdin"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			logger.Error("opening input", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	f, err := wav.Open(in, wav.WithLogger(logger))
	if err != nil {
		logger.Error("parsing wav header", "file", name, "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %s\n", name, f)
	fmt.Printf("  channel mask: 0x%X\n", f.ChannelMask)
	fmt.Printf("  frames:       %d\n", f.Samples)
	fmt.Printf("  duration:     %s\n", f.Duration().Round(time.Millisecond))
	fmt.Printf("  seekable:     %v\n", f.Seekable())

	if *seekTo > 0 {
		if err := f.SeekTime(*seekTo, io.SeekStart); err != nil {
			logger.Error("seeking", "offset", *seekTo, "error", err)
			os.Exit(1)
		}
		pos, _ := f.Position()
		posTime, _ := f.PositionTime()
		logger.Debug("seeked", "frame", pos, "time", posTime)
	}

	if !*decode {
		return
	}

	if err := f.SetReadFormat(sample.Double); err != nil {
		logger.Error("selecting read format", "error", err)
		os.Exit(1)
	}
	buf, err := sample.NewBuffer(sample.Double, 4096*f.Channels)
	if err != nil {
		logger.Error("allocating buffer", "error", err)
		os.Exit(1)
	}

	var peak float64
	var frames uint64
	for {
		n, err := f.ReadSamples(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error("decoding", "error", err)
			os.Exit(1)
		}
		frames += uint64(n)
		for _, v := range buf.Float64()[:n*f.Channels] {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
	}

	fmt.Printf("  decoded:      %d frames\n", frames)
	fmt.Printf("  peak:         %.6f\n", peak)
}
