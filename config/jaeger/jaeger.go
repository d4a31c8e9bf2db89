package jaeger

import (
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	jaegerclient "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitTracer installs a jaeger tracer as the opentracing global tracer. When
// disabled, or when the tracer cannot be built, the global noop tracer stays
// in place and the returned closer does nothing.
func InitTracer(serviceName, agentAddr string, enabled bool) io.Closer {
	if !enabled {
		return nopCloser{}
	}
	cfg := &jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaegerclient.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: agentAddr,
		},
	}
	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaegerclient.StdLogger))
	if err != nil {
		hlog.Errorf("init jaeger tracer: %v", err)
		return nopCloser{}
	}
	opentracing.SetGlobalTracer(tracer)
	hlog.Infof("Jaeger tracer ready, service=%s agent=%s", serviceName, agentAddr)
	return closer
}
