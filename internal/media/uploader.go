package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/barberbook/api/internal/config"
	"github.com/barberbook/api/internal/httperr"
)

const (
	maxEdge     = 800
	webpQuality = 80
)

// ShopImageUploader normalizes shop profile pictures (JPEG/PNG in, scaled
// WebP out) and stores them in an S3-compatible bucket. A nil uploader
// means image upload is not configured.
type ShopImageUploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewShopImageUploader(cfg *config.Config) *ShopImageUploader {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" {
		return nil
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &ShopImageUploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// Upload stores the shop's profile image and returns its public URL.
func (u *ShopImageUploader) Upload(ctx context.Context, shopID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrValidation("invalid_image", "Immagine non valida. Usa JPEG o PNG.")
	}

	encoded, err := encodeWebP(scaleDown(src))
	if err != nil {
		return "", httperr.ErrStorage(err)
	}

	key := fmt.Sprintf("shops/%d/profile.webp", shopID)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(encoded),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", httperr.ErrStorage(err)
	}

	return u.publicURL + "/" + key, nil
}

// scaleDown caps the longest edge at maxEdge, keeping the aspect ratio.
func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeWebP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
