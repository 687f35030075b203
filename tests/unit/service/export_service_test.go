package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"corrispettivi/internal/config"
	"corrispettivi/internal/domain"
	"corrispettivi/internal/port"
	"corrispettivi/internal/service"
	"corrispettivi/mocks"
)

func sampleReportTable() *domain.ReportTable {
	return &domain.ReportTable{
		Month: "2025-03",
		Columns: []domain.Column{
			{Key: "date", Label: "Date", Type: domain.ColumnDate},
			{Key: "total", Label: "Total daily payments", Type: domain.ColumnNumber},
			{Key: "invoice_number_from", Label: "Invoice from No.", Type: domain.ColumnString},
			{Key: "invoice_number_to", Label: "Invoice to No.", Type: domain.ColumnString},
		},
		Rows: []domain.Row{
			{"date": "2025-03-05", "total": 122.0, "invoice_number_from": "2025/0001", "invoice_number_to": "2025/0002"},
		},
		Totals:    domain.Row{"date": "", "total": 122.0, "invoice_number_from": "", "invoice_number_to": ""},
		FileBase:  "corrispettivi-2025-03",
		SheetName: "Corrispettivi",
	}
}

func TestExportService_Export_CSV(t *testing.T) {
	register := new(mocks.MockRegisterService)
	svc := service.NewExportService(register, nil, nil, config.S3Config{}, false)

	opts := domain.RegisterOptions{Month: "2025-03"}
	register.On("Compute", mock.Anything, opts).Return(sampleReportTable(), nil)

	file, err := svc.Export(context.Background(), opts, "csv")

	require.NoError(t, err)
	assert.Equal(t, "corrispettivi-2025-03.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Contains(t, string(file.Data), "2025-03-05")
	register.AssertExpectations(t)
}

func TestExportService_Export_DefaultsToXLSX(t *testing.T) {
	register := new(mocks.MockRegisterService)
	svc := service.NewExportService(register, nil, nil, config.S3Config{}, false)

	opts := domain.RegisterOptions{Month: "2025-03"}
	register.On("Compute", mock.Anything, opts).Return(sampleReportTable(), nil)

	file, err := svc.Export(context.Background(), opts, "")

	require.NoError(t, err)
	assert.Equal(t, "corrispettivi-2025-03.xlsx", file.Filename)
	assert.NotEmpty(t, file.Data)
}

func TestExportService_Export_UnknownFormat(t *testing.T) {
	register := new(mocks.MockRegisterService)
	svc := service.NewExportService(register, nil, nil, config.S3Config{}, false)

	_, err := svc.Export(context.Background(), domain.RegisterOptions{Month: "2025-03"}, "pdf")

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	register.AssertNotCalled(t, "Compute", mock.Anything, mock.Anything)
}

func TestExportService_Archive_Disabled(t *testing.T) {
	register := new(mocks.MockRegisterService)
	svc := service.NewExportService(register, nil, nil, config.S3Config{}, false)

	_, err := svc.Archive(context.Background(), domain.RegisterOptions{Month: "2025-03"})

	assert.ErrorIs(t, err, domain.ErrArchiveDisabled)
}

func TestExportService_Archive_UploadsAndPresigns(t *testing.T) {
	register := new(mocks.MockRegisterService)
	storage := new(mocks.MockObjectStorage)
	s3cfg := config.S3Config{Bucket: "registers-bucket", PresignExpiry: 3600}
	svc := service.NewExportService(register, storage, nil, s3cfg, true)

	opts := domain.RegisterOptions{Month: "2025-03"}
	register.On("Compute", mock.Anything, opts).Return(sampleReportTable(), nil)

	var uploadedKey string
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		uploadedKey = in.Key
		return in.Bucket == "registers-bucket" &&
			strings.HasPrefix(in.Key, "registers/2025-03/") &&
			strings.HasSuffix(in.Key, "corrispettivi-2025-03.xlsx") &&
			in.Size > 0
	})).Return(&port.UploadOutput{}, nil)
	storage.On("GetPresignedURL", mock.Anything, "registers-bucket", mock.Anything, int64(3600)).
		Return("https://example.com/signed", nil)

	result, err := svc.Archive(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, "registers-bucket", result.Bucket)
	assert.Equal(t, uploadedKey, result.Key)
	assert.Equal(t, "https://example.com/signed", result.URL)
	storage.AssertExpectations(t)
}

func TestExportService_Email_Disabled(t *testing.T) {
	register := new(mocks.MockRegisterService)
	svc := service.NewExportService(register, nil, nil, config.S3Config{}, false)

	err := svc.Email(context.Background(), domain.RegisterOptions{Month: "2025-03"}, "admin@example.com")

	assert.ErrorIs(t, err, domain.ErrEmailDisabled)
}

func TestExportService_Email_SendsAttachment(t *testing.T) {
	register := new(mocks.MockRegisterService)
	sender := new(mocks.MockEmailSender)
	svc := service.NewExportService(register, nil, sender, config.S3Config{}, false)

	opts := domain.RegisterOptions{Month: "2025-03"}
	register.On("Compute", mock.Anything, opts).Return(sampleReportTable(), nil)
	sender.On("SendRegisterEmail", mock.Anything, "admin@example.com", "2025-03",
		mock.MatchedBy(func(att port.Attachment) bool {
			return att.Filename == "corrispettivi-2025-03.xlsx" && len(att.Data) > 0
		})).Return(nil)

	err := svc.Email(context.Background(), opts, "admin@example.com")

	require.NoError(t, err)
	sender.AssertExpectations(t)
}
