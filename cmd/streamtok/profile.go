package main

import (
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/streamio/stream"
)

// profile is a named bundle of scan settings loadable from a YAML file, so
// that recurring invocations need not respell buffer tuning flags:
//
//	profiles:
//	  biglines:
//	    split: lines
//	    max-token: 16777216
//	  csvish:
//	    split: words
//	    buffer: 65536
type profile struct {
	Split     string `yaml:"split"`
	MaxToken  int    `yaml:"max-token"`
	Buffer    int    `yaml:"buffer"`
	StrictEnd *bool  `yaml:"strict-end"`
}

type profileFile struct {
	Profiles map[string]profile `yaml:"profiles"`
}

// applyProfile overlays a named profile from the profile file onto the CLI
// settings. Flags explicitly given on the command line are not protected;
// profiles are for users who prefer the file as the source of truth.
func (cli *CLI) applyProfile(logger *slog.Logger) error {
	if cli.Profile == "" && cli.Profiles == "" {
		return nil
	}
	if cli.Profile == "" || cli.Profiles == "" {
		return fmt.Errorf("--profile and --profiles must be given together")
	}

	f, err := stream.Open(cli.Profiles)
	if err != nil {
		return err
	}
	data, err := stream.ReadAll(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parse profiles %s: %w", cli.Profiles, err)
	}

	p, ok := pf.Profiles[cli.Profile]
	if !ok {
		return fmt.Errorf("no profile %q in %s; have %q",
			cli.Profile, cli.Profiles, knownProfiles(pf.Profiles))
	}

	switch p.Split {
	case "":
	case "lines", "words", "bytes", "runes":
		cli.Split = p.Split
	default:
		return fmt.Errorf("profile %q: unknown split %q", cli.Profile, p.Split)
	}
	if p.MaxToken > 0 {
		cli.MaxToken = p.MaxToken
	}
	if p.Buffer > 0 {
		cli.Buffer = p.Buffer
	}
	if p.StrictEnd != nil {
		cli.StrictEnd = *p.StrictEnd
	}
	logger.Debug("applied scan profile", slog.String("profile", cli.Profile))
	return nil
}

func knownProfiles(profiles map[string]profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
