package document

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"contractbot/internal/domain"
	"contractbot/internal/errors"
)

// companyAssets holds the per-company overlay images as PNG bytes.
type companyAssets struct {
	stamp []byte
	badge []byte
}

// Assets bundles every static file the renderer needs, fully loaded into
// memory at startup. The signature has its black background stripped once
// here, so concurrent renders share an immutable copy instead of racing on
// a rewritten file.
type Assets struct {
	fontRegular []byte
	fontBold    []byte
	signature   []byte
	companies   map[domain.CompanyKey]companyAssets
}

// LoadAssets reads fonts, the shared signature and each company's stamp and
// digital-signature badge from dir. Any missing or undecodable file is a
// fatal configuration error.
func LoadAssets(dir string, keys []domain.CompanyKey) (*Assets, error) {
	read := func(rel string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("asset %s: %v", rel, err))
		}
		return data, nil
	}

	fontRegular, err := read(filepath.Join("font", "freesans", "FreeSans.ttf"))
	if err != nil {
		return nil, err
	}
	fontBold, err := read(filepath.Join("font", "freesans", "FreeSansBold.ttf"))
	if err != nil {
		return nil, err
	}

	rawSignature, err := read(filepath.Join("signatures", "sig.png"))
	if err != nil {
		return nil, err
	}
	signature, err := processSignature(rawSignature)
	if err != nil {
		return nil, err
	}

	companies := make(map[domain.CompanyKey]companyAssets, len(keys))
	for _, key := range keys {
		stamp, err := read(filepath.Join(string(key), "stamp.png"))
		if err != nil {
			return nil, err
		}
		badge, err := read(filepath.Join(string(key), "qes.png"))
		if err != nil {
			return nil, err
		}
		companies[key] = companyAssets{stamp: stamp, badge: badge}
	}

	return &Assets{
		fontRegular: fontRegular,
		fontBold:    fontBold,
		signature:   signature,
		companies:   companies,
	}, nil
}

func (a *Assets) company(key domain.CompanyKey) (companyAssets, bool) {
	ca, ok := a.companies[key]
	return ca, ok
}

func processSignature(raw []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("asset signatures/sig.png: %v", err))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, StripBlackBackground(img)); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("encoding processed signature: %v", err))
	}
	return buf.Bytes(), nil
}

// StripBlackBackground turns every exactly-black pixel fully transparent,
// leaving all other pixels unchanged. Applying it to its own output is a
// no-op.
func StripBlackBackground(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if px.R == 0 && px.G == 0 && px.B == 0 {
				out.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
			} else {
				out.SetNRGBA(x, y, px)
			}
		}
	}
	return out
}
