package webhook

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	tgmd "github.com/nicksan4ez/Markdown-tg-bot"
)

// messageKeys are the update fields that carry a message, in priority order.
var messageKeys = []string{"message", "edited_message", "channel_post", "edited_channel_post"}

// Update is the part of a Telegram update the bot acts on.
type Update struct {
	ChatID   int64
	HasChat  bool
	Text     string
	Entities []tgmd.Entity
}

// Deliverable reports whether the update has something to send back.
func (u Update) Deliverable() bool {
	return u.HasChat && u.Text != ""
}

// ParseUpdate extracts text, entities and chat id from a raw update.
//
// Text comes from the first message-like object carrying text or a caption;
// the chat id from the first one carrying chat.id. Parsing is lenient:
// unknown fields are ignored and malformed entities are dropped instead of
// failing the whole update.
func ParseUpdate(body []byte) Update {
	var u Update
	update := gjson.ParseBytes(body)

	for _, msg := range messages(update) {
		if text := msg.Get("text"); text.Exists() {
			u.Text = text.String()
			u.Entities = parseEntities(msg.Get("entities"))
			break
		}
		if caption := msg.Get("caption"); caption.Exists() {
			u.Text = caption.String()
			u.Entities = parseEntities(msg.Get("caption_entities"))
			break
		}
	}

	for _, msg := range messages(update) {
		if id := msg.Get("chat.id"); id.Exists() && id.Type != gjson.Null {
			u.ChatID, u.HasChat = integer(id)
			break
		}
	}
	return u
}

// messages returns the message-like objects of an update in priority order.
func messages(update gjson.Result) []gjson.Result {
	var out []gjson.Result
	for _, key := range messageKeys {
		if msg := update.Get(key); msg.IsObject() {
			out = append(out, msg)
		}
	}
	return out
}

// ParseEntities decodes a Telegram entity array with the same leniency as
// ParseUpdate.
func ParseEntities(raw []byte) []tgmd.Entity {
	return parseEntities(gjson.ParseBytes(raw))
}

func parseEntities(list gjson.Result) []tgmd.Entity {
	if !list.IsArray() {
		return nil
	}

	var out []tgmd.Entity
	list.ForEach(func(_, item gjson.Result) bool {
		kind := tgmd.EntityKind(item.Get("type").String())
		if !kind.Supported() {
			return true
		}
		offset, ok := integer(item.Get("offset"))
		if !ok {
			return true
		}
		length, ok := integer(item.Get("length"))
		if !ok {
			return true
		}
		out = append(out, tgmd.Entity{
			Kind:     kind,
			Offset:   int(offset),
			Length:   int(length),
			Language: item.Get("language").String(),
		})
		return true
	})
	return out
}

// integer accepts JSON numbers with no fractional part and numeric strings.
func integer(r gjson.Result) (int64, bool) {
	switch r.Type {
	case gjson.Number:
		f := r.Float()
		if f != math.Trunc(f) {
			return 0, false
		}
		return r.Int(), true
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(r.Str), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
