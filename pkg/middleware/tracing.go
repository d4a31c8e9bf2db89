package middleware

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// ServerTracing opens one server span per request on the global tracer and
// puts it into the request context, so GORM spans nest under it.
func ServerTracing() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		tracer := opentracing.GlobalTracer()

		carrier := opentracing.HTTPHeadersCarrier(http.Header{})
		c.Request.Header.VisitAll(func(key, value []byte) {
			http.Header(carrier).Add(string(key), string(value))
		})

		opName := string(c.Method()) + " " + c.FullPath()
		var span opentracing.Span
		if parent, err := tracer.Extract(opentracing.HTTPHeaders, carrier); err == nil {
			span = tracer.StartSpan(opName, ext.RPCServerOption(parent))
		} else {
			span = tracer.StartSpan(opName)
		}
		defer span.Finish()

		ext.SpanKindRPCServer.Set(span)
		ext.HTTPMethod.Set(span, string(c.Method()))
		ext.HTTPUrl.Set(span, string(c.Request.URI().RequestURI()))

		c.Next(opentracing.ContextWithSpan(ctx, span))

		status := c.Response.StatusCode()
		ext.HTTPStatusCode.Set(span, uint16(status))
		if status >= http.StatusInternalServerError {
			ext.Error.Set(span, true)
		}
	}
}
