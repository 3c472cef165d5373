package lexis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadText reads a whole UTF-8 document, such as an uploaded .txt file. A
// leading byte order mark is dropped. Input that is not valid UTF-8 fails
// with an InvalidInputError.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", invalidInput("text", "not valid UTF-8")
	}
	return string(data), nil
}

// post is the wire shape of a collected social-media post.
type post struct {
	ID         json.RawMessage `json:"id"`
	Author     string          `json:"author"`
	Platform   string          `json:"platform"`
	Text       json.RawMessage `json:"text"`
	Timestamp  string          `json:"timestamp"`
	Engagement int             `json:"engagement"`
}

// DecodeDocuments reads a JSON array of posts:
//
//	[{"id": 1, "author": "user_0", "text": "...", "timestamp": "2025-01-02T15:04:05Z", "engagement": 12}]
//
// The id may be a string or a number and may be omitted. The text field is
// required and must be a string; violations fail with an InvalidInputError
// naming the offending element.
func DecodeDocuments(r io.Reader) ([]Document, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, invalidInput("posts", "expected a JSON array")
		}
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	docs := make([]Document, 0, len(raw))
	for i, item := range raw {
		doc, err := decodePost(item)
		if err != nil {
			var ie *InvalidInputError
			if errors.As(err, &ie) {
				if ie.Field == "" {
					ie.Field = fmt.Sprintf("posts[%d]", i)
				} else {
					ie.Field = fmt.Sprintf("posts[%d].%s", i, ie.Field)
				}
				return nil, ie
			}
			return nil, fmt.Errorf("decode posts[%d]: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func decodePost(item json.RawMessage) (Document, error) {
	var p post
	if err := json.Unmarshal(item, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				return Document{}, invalidInput("", "expected an object")
			}
			return Document{}, invalidInput(field, "must be a %s", typeErr.Type.String())
		}
		return Document{}, err
	}

	if len(p.Text) == 0 || string(p.Text) == "null" {
		return Document{}, invalidInput("text", "missing")
	}
	var text string
	if err := json.Unmarshal(p.Text, &text); err != nil {
		return Document{}, invalidInput("text", "must be a string")
	}

	id, err := decodeID(p.ID)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:   id,
		Text: text,
		Metadata: DocumentMetadata{
			Author:     p.Author,
			Platform:   p.Platform,
			Engagement: p.Engagement,
		},
	}
	if p.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			return Document{}, invalidInput("timestamp", "must be RFC 3339")
		}
		doc.Metadata.Timestamp = ts
	}
	return doc, nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", invalidInput("id", "must be a string or number")
}
