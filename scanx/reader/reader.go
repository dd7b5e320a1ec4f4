package reader

import (
	"github.com/alapierre/go-scanx/scanx/status"
	"github.com/alapierre/go-scanx/scanx/token"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "scanx.reader")

// ErrNoLoader is returned when ReadFromImage is used on a Gate built without an ImageLoader.
var ErrNoLoader = errors.New("no image loader configured")

// TokenValidator decides whether a read may run.
type TokenValidator interface {
	Validate(accessToken string) status.Status
}

// Gate runs the Decoder only for requests carrying a valid access token.
type Gate struct {
	decoder   Decoder
	loader    ImageLoader
	validator TokenValidator
}

// NewGate creates a Gate. A nil validator checks tokens against the host clock.
func NewGate(decoder Decoder, loader ImageLoader, validator TokenValidator) *Gate {
	if validator == nil {
		validator = token.NewValidator(nil)
	}
	return &Gate{decoder: decoder, loader: loader, validator: validator}
}

// ReadFromImage decodes an encoded image buffer and reads barcodes from it.
func (g *Gate) ReadFromImage(buf []byte, opts Options) (results []Result) {
	defer g.recoverForbidden(&results)

	img, err := g.load(buf)
	if err != nil {
		logger.Debugf("image load failed: %v", err)
		return []Result{{Barcode: Barcode{Error: "Failed to load image from memory"}}}
	}

	if st := g.validator.Validate(opts.AccessToken); !st.OK() {
		return []Result{statusResult(st)}
	}
	return g.read(img, opts)
}

// ReadFromPixmap reads barcodes from a raw RGBA buffer.
func (g *Gate) ReadFromPixmap(buf []byte, width, height int, opts Options) (results []Result) {
	defer g.recoverForbidden(&results)

	if st := g.validator.Validate(opts.AccessToken); !st.OK() {
		return []Result{statusResult(st)}
	}
	return g.read(Image{Data: buf, Width: width, Height: height, Format: RGBA}, opts)
}

// ReadSingleFromPixmap returns the first barcode found in a raw RGBA buffer.
func (g *Gate) ReadSingleFromPixmap(buf []byte, width, height int, opts Options) Result {
	results := g.ReadFromPixmap(buf, width, height, opts)
	if len(results) == 0 {
		const msg = "No barcode found"
		return Result{Barcode: Barcode{Error: msg}, Message: msg, Status: status.NotFound}
	}
	return results[0]
}

func (g *Gate) load(buf []byte) (Image, error) {
	if g.loader == nil {
		return Image{}, ErrNoLoader
	}
	if len(buf) == 0 {
		return Image{}, errors.New("empty image buffer")
	}
	img, err := g.loader.Load(buf)
	if err != nil {
		return Image{}, errors.Wrap(err, "load image")
	}
	img.Format = Lum
	return img, nil
}

func (g *Gate) read(img Image, opts Options) []Result {
	barcodes, err := g.decoder.ReadBarcodes(img, opts)
	if err != nil {
		logger.Warnf("decoder failed: %v", err)
		return []Result{{
			Barcode: Barcode{Error: err.Error()},
			Message: "try again",
			Status:  status.Forbidden,
		}}
	}

	results := make([]Result, 0, len(barcodes))
	for _, b := range barcodes {
		results = append(results, successResult(b))
	}
	return results
}

func (g *Gate) recoverForbidden(results *[]Result) {
	if r := recover(); r != nil {
		logger.Errorf("read aborted: %v", r)
		*results = []Result{statusResult(status.Forbidden)}
	}
}
