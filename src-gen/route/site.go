package route

import (
	"net/http"
	"os"
	"path/filepath"
	"promogen/src-gen/utils"
	"time"
)

// Site serves the static promo site (page, assets, event store with its
// index.json and cover images) from the configured site root.
func Site(muxer *http.ServeMux, as *utils.AppState) {
	files := http.FS(os.DirFS(as.Config.GetSiteDir()))

	muxer.HandleFunc("GET /{filepath...}", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		filepath := filepath.Clean(r.PathValue("filepath"))
		if filepath == "." {
			filepath = "index.html"
		}

		file, err := files.Open(filepath)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer file.Close()

		stat, err := file.Stat()
		if err != nil || stat.IsDir() {
			http.NotFound(w, r)
			return
		}

		http.ServeContent(w, r, stat.Name(), stat.ModTime(), file)
		as.MetricChans.HttpRequest <- float64(time.Since(start).Microseconds())
	})
}
