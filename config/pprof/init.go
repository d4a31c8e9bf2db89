package pprof

import (
	"net/http"
	_ "net/http/pprof"
	"runtime"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Load serves the runtime profiles on addr (e.g. "127.0.0.1:6060") in the
// background. An empty addr leaves profiling off.
func Load(addr string) {
	if addr == "" {
		return
	}
	runtime.SetMutexProfileFraction(1)
	runtime.SetBlockProfileRate(1)

	go func() {
		hlog.Infof("pprof listening on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			hlog.Errorf("pprof server stopped: %v", err)
		}
	}()
}
