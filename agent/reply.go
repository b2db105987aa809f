package agent

import "strings"

// Search trigger sub-protocol: a model may request a web search mid-response
// by embedding a delimited marker in its free-text output, e.g.
//
//	[SEARCH: solar flares]
//
// The marker is recognized only as the literal substring below followed by
// its closing delimiter. Anything else is plain text.
const (
	searchMarker     = "[SEARCH:"
	searchTerminator = "]"
)

// ReplyKind discriminates the variants of a parsed model reply.
type ReplyKind int

const (
	// ReplyPlainText is an ordinary free-text response.
	ReplyPlainText ReplyKind = iota
	// ReplySearchRequest is a response carrying an in-band search trigger.
	ReplySearchRequest
)

// Reply is the tagged-variant result of scanning a raw model response for the
// search trigger. Text always holds the full raw response; Query is set only
// for ReplySearchRequest.
type Reply struct {
	Kind  ReplyKind
	Text  string
	Query string
}

// ParseReply scans a raw model response for the search-trigger marker. The
// parser is strict: a marker without a closing delimiter, or with an empty
// query, falls back to plain text rather than guessing.
func ParseReply(raw string) Reply {
	start := strings.Index(raw, searchMarker)
	if start < 0 {
		return Reply{Kind: ReplyPlainText, Text: raw}
	}

	rest := raw[start+len(searchMarker):]
	end := strings.Index(rest, searchTerminator)
	if end < 0 {
		return Reply{Kind: ReplyPlainText, Text: raw}
	}

	query := strings.TrimSpace(rest[:end])
	if query == "" {
		return Reply{Kind: ReplyPlainText, Text: raw}
	}

	return Reply{Kind: ReplySearchRequest, Text: raw, Query: query}
}
