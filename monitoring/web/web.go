// Package web holds the dashboard served by the monitor.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// DevEnv names the environment variable that makes the dashboard load from
// the source tree instead of the binary.
const DevEnv = "FUELSIM_MONITOR_DEV"

//go:embed dist/*
var dist embed.FS

// GetAssets returns the dashboard files.
func GetAssets() http.FileSystem {
	if devMode() {
		return http.Dir(sourceDir())
	}

	sub, err := fs.Sub(dist, "dist")
	if err != nil {
		panic(err)
	}

	return http.FS(sub)
}

func sourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot locate dashboard sources")
	}

	dir := filepath.Join(filepath.Dir(file), "dist")
	fmt.Fprintf(os.Stderr, "Serving dashboard from %s\n", dir)

	return dir
}

func devMode() bool {
	on, err := strconv.ParseBool(os.Getenv(DevEnv))

	return err == nil && on
}
