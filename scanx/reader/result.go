package reader

import (
	"github.com/alapierre/go-scanx/scanx/status"
	"github.com/go-faster/jx"
)

// Result is one entry returned from a read. Failed gate checks and decoder
// errors are reported as a single Result with Error, Message and Status set.
type Result struct {
	Barcode
	Message string
	Status  status.Status
}

func successResult(b Barcode) Result {
	return Result{Barcode: b, Message: "success", Status: status.OK}
}

func statusResult(s status.Status) Result {
	msg := s.Message()
	return Result{Barcode: Barcode{Error: msg}, Message: msg, Status: s}
}

func (r Result) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("isValid")
	e.Bool(r.IsValid)
	e.FieldStart("error")
	e.Str(r.Error)
	e.FieldStart("format")
	e.Int(r.Format)
	e.FieldStart("bytes")
	e.Base64(r.Bytes)
	e.FieldStart("bytesECI")
	e.Base64(r.BytesECI)
	e.FieldStart("text")
	e.Str(r.Text)
	e.FieldStart("ecLevel")
	e.Str(r.ECLevel)
	e.FieldStart("contentType")
	e.Int(r.ContentType)
	e.FieldStart("hasECI")
	e.Bool(r.HasECI)
	e.FieldStart("position")
	encodePosition(e, r.Position)
	e.FieldStart("orientation")
	e.Int(r.Orientation)
	e.FieldStart("isMirrored")
	e.Bool(r.IsMirrored)
	e.FieldStart("isInverted")
	e.Bool(r.IsInverted)
	e.FieldStart("symbologyIdentifier")
	e.Str(r.SymbologyIdentifier)
	e.FieldStart("sequenceSize")
	e.Int(r.SequenceSize)
	e.FieldStart("sequenceIndex")
	e.Int(r.SequenceIndex)
	e.FieldStart("sequenceId")
	e.Str(r.SequenceID)
	e.FieldStart("readerInit")
	e.Bool(r.ReaderInit)
	e.FieldStart("lineCount")
	e.Int(r.LineCount)
	e.FieldStart("version")
	e.Str(r.Version)
	e.FieldStart("extra")
	e.Str(r.Extra)
	e.FieldStart("message")
	e.Str(r.Message)
	e.FieldStart("status")
	e.Int(int(r.Status))
	e.ObjEnd()
}

func encodePosition(e *jx.Encoder, p Position) {
	e.ObjStart()
	for _, c := range []struct {
		name string
		pt   Point
	}{
		{"topLeft", p.TopLeft},
		{"topRight", p.TopRight},
		{"bottomRight", p.BottomRight},
		{"bottomLeft", p.BottomLeft},
	} {
		e.FieldStart(c.name)
		e.ObjStart()
		e.FieldStart("x")
		e.Int(c.pt.X)
		e.FieldStart("y")
		e.Int(c.pt.Y)
		e.ObjEnd()
	}
	e.ObjEnd()
}

func (r Result) MarshalJSON() ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	r.Encode(e)
	return append([]byte(nil), e.Bytes()...), nil
}

// EncodeResults renders a whole read as a JSON array.
func EncodeResults(results []Result) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ArrStart()
	for _, r := range results {
		r.Encode(e)
	}
	e.ArrEnd()
	return append([]byte(nil), e.Bytes()...)
}
