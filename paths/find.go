// Package paths locates WAD archives in the directories source ports
// conventionally search.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

// IWADNames are the base archives FindIWAD looks for, most preferred first.
var IWADNames = []string{
	"doom2.wad",
	"plutonia.wad",
	"tnt.wad",
	"doom.wad",
	"doom1.wad",
	"freedoom2.wad",
	"freedoom1.wad",
	"heretic.wad",
	"heretic1.wad",
	"hexen.wad",
	"chex.wad",
}

// SearchDirs returns the directories searched by Find: $DOOMWADDIR, each
// entry of $DOOMWADPATH, then the working directory.
func SearchDirs() []string {
	var dirs []string
	if d := os.Getenv("DOOMWADDIR"); d != "" {
		dirs = append(dirs, d)
	}
	for _, d := range filepath.SplitList(os.Getenv("DOOMWADPATH")) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return append(dirs, ".")
}

// Find locates the passed file name in SearchDirs and returns a path to it,
// or an empty string. Each directory is tried with the name as given, then
// lower and upper cased, as archives ship with either.
func Find(fileName string) string {
	for _, dir := range SearchDirs() {
		for _, name := range candidateNames(fileName) {
			path := filepath.Join(dir, name)
			if st, err := os.Stat(path); err == nil && !st.IsDir() {
				glog.Infof("paths.Find(%q)=%s", fileName, path)
				return path
			}
		}
	}
	return ""
}

// FindIWAD returns the path of the first of IWADNames that Find locates.
func FindIWAD() string {
	for _, name := range IWADNames {
		if path := Find(name); path != "" {
			return path
		}
	}
	return ""
}

func candidateNames(fileName string) []string {
	names := []string{fileName}
	for _, n := range []string{strings.ToLower(fileName), strings.ToUpper(fileName)} {
		if n != names[len(names)-1] && n != fileName {
			names = append(names, n)
		}
	}
	return names
}
