package domain

// Request is the JSON envelope sent to the HTTP server. V carries the
// JSON-encoded value as raw bytes (base64 on the wire).
type Request struct {
	Command string `json:"command"`
	K       string `json:"k"`
	V       []byte `json:"v,omitempty"`
}

// Response is the JSON envelope returned by the HTTP server. A failed
// operation travels as a non-empty Err with HTTP status 200; transport
// problems are the only source of non-200 statuses.
type Response struct {
	Err string `json:"err,omitempty"`
	K   string `json:"k"`
	V   []byte `json:"v,omitempty"`
}

// Commands accepted by the HTTP envelope protocol.
const (
	CmdGet   = "GET"
	CmdSet   = "SET"
	CmdSetNX = "SETNX"
	CmdDel   = "DEL"
	CmdAdd   = "ADD"
	CmdDec   = "DEC"
)
