package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/findmychef/chef-marketplace/internal/config"
)

var ErrNotImage = errors.New("uploaded file is not a decodable image")

// Photos larger than this on either edge are downscaled before encoding.
const maxPhotoEdge = 512

// PhotoStore transcodes chef profile photos to webp and puts them in S3.
type PhotoStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
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

	base := cfg.S3PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &PhotoStore{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}
}

// UploadChefPhoto returns the public URL of the stored image.
func (s *PhotoStore) UploadChefPhoto(ctx context.Context, chefID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", ErrNotImage
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 80}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("chefs/%d/%s.webp", chefID, uuid.New().String())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", err
	}

	return s.publicBaseURL + "/" + key, nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxPhotoEdge && h <= maxPhotoEdge {
		return src
	}

	if w >= h {
		h = h * maxPhotoEdge / w
		w = maxPhotoEdge
	} else {
		w = w * maxPhotoEdge / h
		h = maxPhotoEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
