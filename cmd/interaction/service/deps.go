package service

import (
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/mq"
)

// Deps are the collaborators of the comment and like services.
type Deps struct {
	Locker    lock.Locker
	Publisher mq.Publisher
}

var CommentNotFoundErr = errno.NotFoundErr.WithMessage("Comment not found")
