package media

import (
	"context"

	"go-food-ordering/apperrors"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
	"go.uber.org/zap"
)

// uploadAPI is the slice of the Cloudinary SDK the uploader calls.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader uploads through an unsigned preset. The preset and cloud
// name are public values, not secrets.
type CloudinaryUploader struct {
	api          uploadAPI
	uploadPreset string
	log          *zap.Logger
}

type CloudinaryOptions struct {
	URL          string // CLOUDINARY_URL, wins over the individual fields
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
	UploadPrefix string
}

func NewCloudinaryUploader(opts CloudinaryOptions, log *zap.Logger) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if opts.URL != "" {
		cld, err = cloudinary.NewFromURL(opts.URL)
	} else {
		cld, err = cloudinary.NewFromParams(opts.CloudName, opts.APIKey, opts.APISecret)
	}
	if err != nil {
		return nil, apperrors.Upload("cloudinary init error", err)
	}
	cld.Config.URL.Secure = true
	if opts.UploadPrefix != "" {
		cld.Config.API.UploadPrefix = opts.UploadPrefix
	}
	return newCloudinaryUploader(&cld.Upload, opts.UploadPreset, log), nil
}

func newCloudinaryUploader(api uploadAPI, preset string, log *zap.Logger) *CloudinaryUploader {
	return &CloudinaryUploader{api: api, uploadPreset: preset, log: log}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file File) (string, error) {
	resp, err := u.api.Upload(ctx, file.Body, uploader.UploadParams{
		UploadPreset: u.uploadPreset,
		Folder:       "foods",
	})
	if err != nil {
		u.log.Error("cloudinary upload failed", zap.String("file", file.Name), zap.Error(err))
		return "", apperrors.Upload("Upload Network Error", err)
	}
	if resp == nil {
		return "", apperrors.Upload("Upload Error: empty response", nil)
	}
	if resp.Error.Message != "" {
		u.log.Warn("cloudinary rejected upload", zap.String("file", file.Name), zap.String("reason", resp.Error.Message))
		return "", apperrors.Upload("Upload Error: "+resp.Error.Message, nil)
	}
	if resp.SecureURL == "" {
		return "", apperrors.Upload("Upload Error: no url returned", nil)
	}
	return resp.SecureURL, nil
}
