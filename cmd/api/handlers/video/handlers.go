package handlers

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"VidTube.com/cmd/video/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	deps service.Deps
	// TempUploadFolderPath is where multipart files are spooled before they
	// are pushed to the media store.
	TempUploadFolderPath string
)

func Init(d service.Deps, tempDir string) {
	deps = d
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	TempUploadFolderPath = tempDir
}

type VideoListParam struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type UpdateVideoParam struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
}

// spooledFile is a multipart upload saved to local disk.
type spooledFile struct {
	Path        string
	ContentType string
}

// saveUpload writes the named multipart file to TempUploadFolderPath. A
// missing part returns (nil, nil).
func saveUpload(c *app.RequestContext, name string) (*spooledFile, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		// not multipart, or no such part
		return nil, nil
	}
	if err = os.MkdirAll(TempUploadFolderPath, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create upload temp dir")
	}
	path := filepath.Join(TempUploadFolderPath, uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err = c.SaveUploadedFile(fh, path); err != nil {
		return nil, errors.Wrapf(err, "save upload %s", name)
	}
	return &spooledFile{Path: path, ContentType: fh.Header.Get("Content-Type")}, nil
}

func cleanup(ctx context.Context, files ...*spooledFile) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
			hlog.CtxWarnf(ctx, "remove temp upload %s: %v", f.Path, err)
		}
	}
}
