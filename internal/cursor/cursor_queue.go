package cursor

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// QueueCursor is the keyset cursor for moderation-queue listings, ordered by
// (createdAt, id) ascending so the oldest submissions surface first.
type QueueCursor struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

func EncodeQueueCursor(t time.Time, id string) string {
	b, _ := json.Marshal(QueueCursor{
		CreatedAt: t.UnixMilli(),
		ID:        id,
	})
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeQueueCursor(s string) (time.Time, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, "", err
	}

	var p QueueCursor
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, "", err
	}

	return time.UnixMilli(p.CreatedAt).UTC(), p.ID, nil
}
