package writer

import (
	"strings"

	"github.com/alapierre/go-scanx/png"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

var logger = logrus.WithField("component", "scanx.writer")

// QRCode is the only format the bundled encoder produces.
const QRCode = 1 << 13

type Options struct {
	Format         int
	ECLevel        string
	Scale          int
	SizeHint       int
	WithQuietZones bool
}

func DefaultOptions() Options {
	return Options{
		Format:         QRCode,
		ECLevel:        "M",
		Scale:          4,
		WithQuietZones: true,
	}
}

// Symbol is the module matrix, one luminance byte per module (0 dark, 255 light).
type Symbol struct {
	Data   []byte
	Width  int
	Height int
}

type Result struct {
	Error  string
	SVG    string
	UTF8   string
	Image  []byte
	Symbol Symbol
}

func WriteFromText(text string, opts Options) Result {
	return write(text, opts)
}

func WriteFromBytes(data []byte, opts Options) Result {
	return write(string(data), opts)
}

func write(content string, opts Options) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("write aborted: %v", r)
			res = Result{Error: "Unknown error"}
		}
	}()

	q, err := build(content, opts)
	if err != nil {
		logger.Debugf("build failed: %v", err)
		return Result{Error: err.Error()}
	}

	bitmap := q.Bitmap()
	scale := moduleScale(opts, len(bitmap))

	image, err := png.Scaled(q, scale)
	if err != nil {
		return Result{Error: errors.Wrap(err, "render png").Error()}
	}

	svg, err := renderSVG(bitmap, scale)
	if err != nil {
		return Result{Error: errors.Wrap(err, "render svg").Error()}
	}

	return Result{
		SVG:    svg,
		UTF8:   renderUTF8(bitmap),
		Image:  image,
		Symbol: symbolOf(bitmap),
	}
}

func build(content string, opts Options) (*qrcode.QRCode, error) {
	if opts.Format != QRCode {
		return nil, errors.Errorf("unsupported barcode format: %d", opts.Format)
	}
	if content == "" {
		return nil, errors.New("empty content")
	}

	level, err := recoveryLevel(opts.ECLevel)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(content, level)
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}
	q.DisableBorder = !opts.WithQuietZones
	return q, nil
}

func recoveryLevel(ec string) (qrcode.RecoveryLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(ec)) {
	case "L":
		return qrcode.Low, nil
	case "", "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	}
	return 0, errors.Errorf("invalid ecLevel: %q (allowed: L, M, Q, H)", ec)
}

// moduleScale picks pixels per module: SizeHint wins over Scale.
func moduleScale(opts Options, modules int) int {
	if opts.SizeHint > 0 && modules > 0 {
		return max(opts.SizeHint/modules, 1)
	}
	return max(opts.Scale, 1)
}

func symbolOf(bitmap [][]bool) Symbol {
	h := len(bitmap)
	if h == 0 {
		return Symbol{}
	}
	w := len(bitmap[0])

	data := make([]byte, 0, w*h)
	for _, row := range bitmap {
		for _, dark := range row {
			if dark {
				data = append(data, 0)
			} else {
				data = append(data, 255)
			}
		}
	}
	return Symbol{Data: data, Width: w, Height: h}
}

// renderUTF8 packs two module rows per text line using half block characters.
func renderUTF8(bitmap [][]bool) string {
	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bottom := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
