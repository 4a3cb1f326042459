package main

import (
	"net/http"
	"os"
	"time"

	"github.com/juju/loggo/v2"
	"github.com/spf13/cobra"
)

var logger = loggo.GetLogger("datakeep.assetd")

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var dir, addr, prefix string
	cmd := &cobra.Command{
		Use:   "assetd",
		Short: "Serve a bundled assets directory read-only over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loggo.ConfigureLoggers("datakeep=INFO"); err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           newHandler(dir, prefix),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Infof("serving %s at http://%s%s", dir, addr, prefix)
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "assets directory to serve")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&prefix, "prefix", "/assets/", "URL prefix")
	return cmd
}

// newHandler serves dir under prefix, rejecting anything but GET and HEAD.
func newHandler(dir, prefix string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	mux := http.NewServeMux()
	mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "read-only", http.StatusMethodNotAllowed)
			return
		}
		logger.Debugf("%s %s", r.Method, r.URL.Path)
		files.ServeHTTP(w, r)
	})
	return mux
}
