package reader

// Options mirror the host-facing reader options. Everything except
// AccessToken is passed through to the Decoder untouched.
type Options struct {
	Formats               int
	TryHarder             bool
	TryRotate             bool
	TryInvert             bool
	TryDownscale          bool
	TryDenoise            bool
	Binarizer             uint8
	IsPure                bool
	DownscaleThreshold    uint16
	DownscaleFactor       uint8
	MinLineCount          uint8
	MaxNumberOfSymbols    uint8
	TryCode39ExtendedMode bool
	ReturnErrors          bool
	EanAddOnSymbol        uint8
	TextMode              uint8
	CharacterSet          uint8
	AccessToken           string
}

func DefaultOptions() Options {
	return Options{
		TryHarder:          true,
		TryRotate:          true,
		TryInvert:          true,
		TryDownscale:       true,
		DownscaleThreshold: 500,
		DownscaleFactor:    3,
		MinLineCount:       2,
		MaxNumberOfSymbols: 255,
	}
}

type ImageFormat int

const (
	Lum ImageFormat = iota
	RGBA
)

// Image is a raw pixel buffer handed to the Decoder.
type Image struct {
	Data   []byte
	Width  int
	Height int
	Format ImageFormat
}

type Point struct {
	X int
	Y int
}

type Position struct {
	TopLeft     Point
	TopRight    Point
	BottomRight Point
	BottomLeft  Point
}

type Symbol struct {
	Data   []byte
	Width  int
	Height int
}

// Barcode is a single symbol reported by the Decoder.
type Barcode struct {
	IsValid             bool
	Error               string
	Format              int
	Bytes               []byte
	BytesECI            []byte
	Text                string
	ECLevel             string
	ContentType         int
	HasECI              bool
	Position            Position
	Orientation         int
	IsMirrored          bool
	IsInverted          bool
	SymbologyIdentifier string
	SequenceSize        int
	SequenceIndex       int
	SequenceID          string
	ReaderInit          bool
	LineCount           int
	Version             string
	Symbol              Symbol
	Extra               string
}

// Decoder is the barcode detection and decoding library.
type Decoder interface {
	ReadBarcodes(img Image, opts Options) ([]Barcode, error)
}

// ImageLoader turns an encoded image (PNG, JPEG, ...) into a luminance buffer.
type ImageLoader interface {
	Load(buf []byte) (Image, error)
}
