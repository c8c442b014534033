package versioninfo

import (
	"fmt"
	"regexp"
)

// Version is the output of git describe --tags for the build, set with
//
//	go build -ldflags "-X github.com/futurehomeno/glamox-config-env/versioninfo.Version=$(git describe --tags)"
var Version = "v0.0.0"

var re = regexp.MustCompile(`^v?(?P<Major>\d+)\.(?P<Minor>\d+)\.(?P<Patch>\d+)(?:-(?P<CommitNum>\d+)-g(?P<Commit>[0-9a-f]+))?`)

// Info is a parsed git describe string
type Info struct {
	Major     string
	Minor     string
	Patch     string
	CommitNum string
	Commit    string
}

// Parse splits a git describe string such as v1.4.0-3-gdeadbee
func Parse(describe string) (Info, error) {
	match := re.FindStringSubmatch(describe)
	if match == nil {
		return Info{}, fmt.Errorf("unrecognized version %q", describe)
	}

	v := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i != 0 && name != "" {
			v[name] = match[i]
		}
	}

	return Info{
		Major:     v["Major"],
		Minor:     v["Minor"],
		Patch:     v["Patch"],
		CommitNum: v["CommitNum"],
		Commit:    v["Commit"],
	}, nil
}

func (i Info) String() string {
	ver := fmt.Sprintf("v%s.%s.%s", i.Major, i.Minor, i.Patch)
	if i.CommitNum != "" {
		ver += "-" + i.CommitNum
	}
	if i.Commit != "" {
		ver += "+" + i.Commit
	}
	return ver
}

// String returns the parsed build version, or Version as is when it does not
// look like a git describe string
func String() string {
	info, err := Parse(Version)
	if err != nil {
		return Version
	}
	return info.String()
}
