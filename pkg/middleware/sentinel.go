package middleware

import (
	"context"

	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/response"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// ToggleResource is the sentinel resource shared by the like and
// subscription toggle routes.
const ToggleResource = "vidtube:toggle"

// InitSentinel starts sentinel and loads a QPS rule for the toggle routes.
func InitSentinel(toggleQPS float64) error {
	if err := sentinel.InitDefault(); err != nil {
		return errors.Wrap(err, "init sentinel")
	}
	return LoadFlowRule(ToggleResource, toggleQPS)
}

// LoadFlowRule replaces the loaded flow rules with one that rejects requests
// on resource beyond qps per second.
func LoadFlowRule(resource string, qps float64) error {
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               resource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		return errors.Wrapf(err, "load flow rule for %s", resource)
	}
	hlog.Infof("Sentinel flow rule loaded: resource=%s qps=%.0f", resource, qps)
	return nil
}

// FlowControl answers 429 once resource is over its flow rule.
func FlowControl(resource string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blockErr := sentinel.Entry(resource, sentinel.WithTrafficType(base.Inbound))
		if blockErr != nil {
			hlog.CtxWarnf(ctx, "request on %s blocked by sentinel: %v", resource, blockErr)
			response.Abort(ctx, c, errno.TooManyRequestsErr)
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
