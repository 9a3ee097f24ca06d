package media

import (
	"context"
	"io"
)

// Image presets applied at upload time. Logos are capped square, banners wide.
const (
	LogoTransformation   = "c_limit,w_500,h_500/q_auto,f_auto"
	BannerTransformation = "c_limit,w_1920,h_600/q_auto,f_auto"
)

// Uploader stores binary images on a third-party media host and returns the
// hosted delivery URL.
type Uploader interface {
	UploadImage(ctx context.Context, folder, publicID, transformation string, file io.Reader) (string, error)
}
