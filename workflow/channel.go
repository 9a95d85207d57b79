// Package workflow appends outputs, environment variables, PATH entries and
// step summaries to the files a GitHub Actions runner hands to each step.
//
// The runner exposes one file per channel through an environment variable
// (GITHUB_OUTPUT, GITHUB_ENV, GITHUB_PATH, GITHUB_STEP_SUMMARY). Every call
// opens the file in append mode, writes once and closes it again; nothing is
// ever read back.
package workflow

import (
	"fmt"
	"os"
)

// DefaultPrefix is the environment variable prefix used by GitHub Actions.
const DefaultPrefix = "GITHUB"

// Channel identifies one of the runner files.
type Channel int

const (
	ChannelOutput Channel = iota
	ChannelEnv
	ChannelPath
	ChannelSummary
)

// Channels returns every channel in declaration order.
func Channels() []Channel {
	return []Channel{ChannelOutput, ChannelEnv, ChannelPath, ChannelSummary}
}

// Suffix returns the environment variable suffix naming the channel's file.
func (c Channel) Suffix() string {
	switch c {
	case ChannelOutput:
		return "OUTPUT"
	case ChannelEnv:
		return "ENV"
	case ChannelPath:
		return "PATH"
	case ChannelSummary:
		return "STEP_SUMMARY"
	}
	return ""
}

// EnvVar returns the environment variable holding the channel's file path.
func (c Channel) EnvVar(prefix string) string {
	return prefix + "_" + c.Suffix()
}

func (c Channel) String() string {
	switch c {
	case ChannelOutput:
		return "output"
	case ChannelEnv:
		return "env"
	case ChannelPath:
		return "path"
	case ChannelSummary:
		return "summary"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// Files holds the resolved file path of every channel.
// An empty path means the channel is not configured.
type Files struct {
	Prefix  string
	Output  string
	Env     string
	Path    string
	Summary string
}

// FilesFromEnv reads the channel paths from the process environment.
func FilesFromEnv(prefix string) Files {
	return FilesFromLookup(prefix, os.LookupEnv)
}

// FilesFromLookup reads each channel variable once through lookup.
func FilesFromLookup(prefix string, lookup func(string) (string, bool)) Files {
	get := func(ch Channel) string {
		v, _ := lookup(ch.EnvVar(prefix))
		return v
	}
	return Files{
		Prefix:  prefix,
		Output:  get(ChannelOutput),
		Env:     get(ChannelEnv),
		Path:    get(ChannelPath),
		Summary: get(ChannelSummary),
	}
}

// Resolve returns the path backing ch. It fails with ErrConfiguration when
// the path is empty.
func (f Files) Resolve(ch Channel) (string, error) {
	var path string
	switch ch {
	case ChannelOutput:
		path = f.Output
	case ChannelEnv:
		path = f.Env
	case ChannelPath:
		path = f.Path
	case ChannelSummary:
		path = f.Summary
	default:
		return "", fmt.Errorf("%w: unknown %s", ErrArgument, ch)
	}
	if path == "" {
		prefix := f.Prefix
		if prefix == "" {
			prefix = DefaultPrefix
		}
		return "", fmt.Errorf("%w: %s is not set", ErrConfiguration, ch.EnvVar(prefix))
	}
	return path, nil
}
