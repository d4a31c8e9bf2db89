package mq

import (
	"time"

	"github.com/google/uuid"
)

// 事件类型，同时作为 topic exchange 的 routing key
const (
	VideoPublished      = "video.published"
	VideoDeleted        = "video.deleted"
	CommentCreated      = "comment.created"
	CommentDeleted      = "comment.deleted"
	LikeAdded           = "like.added"
	LikeRemoved         = "like.removed"
	SubscriptionAdded   = "subscription.added"
	SubscriptionRemoved = "subscription.removed"
)

const DefaultExchange = "vidtube.events"

// Event is one domain fact. Payload must be JSON encodable.
type Event struct {
	EventID   string      `json:"eventId"`
	Type      string      `json:"type"`
	ActorID   int64       `json:"actorId,string"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func NewEvent(eventType string, actor int64, payload interface{}) *Event {
	return &Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ActorID:   actor,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
}

// LikePayload names the liked target.
type LikePayload struct {
	TargetType string `json:"targetType"`
	TargetID   int64  `json:"targetId,string"`
}

type SubscriptionPayload struct {
	ChannelID int64 `json:"channelId,string"`
}

type VideoPayload struct {
	VideoID int64  `json:"videoId,string"`
	OwnerID int64  `json:"ownerId,string"`
	Title   string `json:"title,omitempty"`
}

type CommentPayload struct {
	CommentID int64 `json:"commentId,string"`
	VideoID   int64 `json:"videoId,string"`
}
