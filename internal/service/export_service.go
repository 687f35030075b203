package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"corrispettivi/internal/config"
	"corrispettivi/internal/domain"
	"corrispettivi/internal/export"
	"corrispettivi/internal/port"
)

// Export content types by format.
const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// ExportFile is a rendered register ready for download or delivery.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ArchiveResult points at an archived register copy.
type ArchiveResult struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

// ExportService renders, archives and delivers register files.
type ExportService interface {
	Export(ctx context.Context, opts domain.RegisterOptions, format string) (*ExportFile, error)
	Archive(ctx context.Context, opts domain.RegisterOptions) (*ArchiveResult, error)
	Email(ctx context.Context, opts domain.RegisterOptions, toEmail string) error
}

type exportService struct {
	register RegisterService
	storage  port.ObjectStorage
	email    port.EmailSender
	s3cfg    config.S3Config
	archive  bool
}

// NewExportService creates a new ExportService implementation. storage and
// email may be nil when the corresponding feature is not configured.
func NewExportService(
	register RegisterService,
	storage port.ObjectStorage,
	email port.EmailSender,
	s3cfg config.S3Config,
	archiveEnabled bool,
) ExportService {
	return &exportService{
		register: register,
		storage:  storage,
		email:    email,
		s3cfg:    s3cfg,
		archive:  archiveEnabled,
	}
}

func (s *exportService) Export(ctx context.Context, opts domain.RegisterOptions, format string) (*ExportFile, error) {
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		return nil, domain.ErrUnknownFormat
	}

	table, err := s.register.Compute(ctx, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var contentType string
	switch format {
	case "xlsx":
		contentType = contentTypeXLSX
		err = export.WriteXLSX(&buf, table)
	case "csv":
		contentType = contentTypeCSV
		err = export.WriteCSV(&buf, table)
	}
	if err != nil {
		return nil, fmt.Errorf("export.Export %s: %w", format, err)
	}

	return &ExportFile{
		Filename:    export.BuildFilename(table.FileBase, format),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) Archive(ctx context.Context, opts domain.RegisterOptions) (*ArchiveResult, error) {
	if !s.archive || s.storage == nil || s.s3cfg.Bucket == "" {
		return nil, domain.ErrArchiveDisabled
	}

	file, err := s.Export(ctx, opts, "xlsx")
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("registers/%s/%s-%s", opts.Month, uuid.New().String(), file.Filename)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(file.Data),
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
	})
	if err != nil {
		return nil, fmt.Errorf("export.Archive upload: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, s.s3cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("export.Archive presign: %w", err)
	}

	return &ArchiveResult{Bucket: s.s3cfg.Bucket, Key: key, URL: url}, nil
}

func (s *exportService) Email(ctx context.Context, opts domain.RegisterOptions, toEmail string) error {
	if s.email == nil {
		return domain.ErrEmailDisabled
	}

	file, err := s.Export(ctx, opts, "xlsx")
	if err != nil {
		return err
	}

	month := domain.SanitizeMonth(opts.Month, time.Now())
	err = s.email.SendRegisterEmail(ctx, toEmail, month, port.Attachment{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Data:        file.Data,
	})
	if err != nil {
		return fmt.Errorf("export.Email: %w", err)
	}
	return nil
}
