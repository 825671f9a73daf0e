// Command wadtitleweb serves the title screen of an IWAD, optionally
// overridden by a PWAD, over HTTP.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-wadlauncher/paths"
	"badc0de.net/pkg/go-wadlauncher/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for wadtitleweb")
	filePath      = flag.String("file", "", "path to a PWAD whose lumps override the IWAD's")

	iwadPath string
)

func main() {
	paths.SetupIWADFlag("iwad", &iwadPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if iwadPath == "" && *filePath == "" {
		glog.Fatal("no archives given; pass -iwad and/or -file")
	}

	r := mux.NewRouter()
	web.NewHandler(iwadPath, *filePath).RegisterRoutes(r)

	glog.Infof("serving title screen of %q (override %q) on %s", iwadPath, *filePath, *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.LoggingHandler(os.Stderr, handlers.CompressHandler(r))))
}
