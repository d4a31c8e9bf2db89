package handlers

import (
	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/query"
	"github.com/cloudwego/hertz/pkg/app"
)

var deps service.Deps

// Init sets the collaborators the comment and like handlers use.
func Init(d service.Deps) {
	deps = d
}

type CommentParam struct {
	Content string `json:"content" form:"content"`
}

func pageOf(c *app.RequestContext) query.PageRequest {
	return query.ParsePageRequest(c.Query("page"), c.Query("limit"))
}
