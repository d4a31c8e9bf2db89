package oss

import (
	"strings"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// InitMinio builds the MinIO backed store from config.ConfigInfo.Minio.
func InitMinio() (*MinioStore, error) {
	conf := config.ConfigInfo.Minio
	if conf.Endpoint == "" {
		return nil, errors.New("minio.endpoint is not configured")
	}

	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", conf.Endpoint, conf.AccessKey)

	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
		Region: conf.Region,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, errors.Wrap(err, "create minio client")
	}

	publicBase := conf.PublicBase
	if publicBase == "" {
		scheme := "http://"
		if conf.UseSSL {
			scheme = "https://"
		}
		publicBase = scheme + conf.Endpoint
	}

	hlog.Info("Connect Minio Success")
	return NewMinioStore(client, strings.TrimRight(publicBase, "/"), conf.Region), nil
}
