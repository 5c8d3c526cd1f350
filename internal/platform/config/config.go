package config

import (
	"fmt"
	"io"
)

const (
	DefaultStudyMinutes = 30
	DefaultBreakMinutes = 10
)

type Config struct {
	In                  io.Reader
	Out                 io.Writer
	GOOS                string
	DefaultStudyMinutes int
	DefaultBreakMinutes int
}

func New(in io.Reader, out io.Writer, goos string) (Config, error) {
	if in == nil || out == nil {
		return Config{}, fmt.Errorf("console streams are required")
	}
	if goos == "" {
		return Config{}, fmt.Errorf("platform is required")
	}
	return Config{
		In:                  in,
		Out:                 out,
		GOOS:                goos,
		DefaultStudyMinutes: DefaultStudyMinutes,
		DefaultBreakMinutes: DefaultBreakMinutes,
	}, nil
}
