package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-will-keeper/internal/adapter"
	"github.com/MKhiriev/go-will-keeper/internal/crypto"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/store"
	"github.com/MKhiriev/go-will-keeper/models"
)

// maxSealedFileSize caps how much of a file is read into memory for sealing.
var maxSealedFileSize int64 = 64 << 20

const sealedFileSuffix = ".sealed"

type uploadService struct {
	storage        adapter.StorageAdapter
	sealer         crypto.Sealer
	sealPassphrase string
	logger         *logger.Logger
}

// NewUploadService creates an UploadService posting files through storage.
// With a non-empty sealPassphrase every file is sealed by sealer before it
// leaves the machine; files that are already sealed are sent unchanged.
func NewUploadService(storage adapter.StorageAdapter, sealer crypto.Sealer, sealPassphrase string, log *logger.Logger) UploadService {
	return &uploadService{
		storage:        storage,
		sealer:         sealer,
		sealPassphrase: sealPassphrase,
		logger:         log,
	}
}

func (s *uploadService) Upload(ctx context.Context, path string) (models.UploadResult, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return models.UploadResult{}, ErrNoFileSelected
	}

	file, err := os.Open(path)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %w", ErrNoFileSelected, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return models.UploadResult{}, fmt.Errorf("%w: %s is a directory", ErrNoFileSelected, path)
	}

	name, content, size := filepath.Base(path), io.Reader(file), info.Size()
	sealed := false
	if s.sealer != nil && s.sealPassphrase != "" {
		body, err := s.seal(file)
		if err != nil {
			s.logger.Err(err).Str("func", "uploadService.Upload").Str("file", path).Msg("sealing failed")
			return models.UploadResult{}, fmt.Errorf("%w: %s: %w", ErrSealFailed, path, err)
		}
		if !strings.HasSuffix(name, sealedFileSuffix) {
			name += sealedFileSuffix
		}
		content, size, sealed = bytes.NewReader(body), int64(len(body)), true
	}

	result, err := s.storage.Upload(ctx, name, content)
	if err != nil {
		s.logger.Err(err).Str("func", "uploadService.Upload").Str("file", path).Msg("upload failed")
		return models.UploadResult{}, mapAdapterError(err)
	}
	if result.Size == 0 {
		result.Size = size
	}
	result.Sealed = sealed

	s.logger.Info().Str("func", "uploadService.Upload").Str("file", path).Str("cid", result.CID).Str("source", string(result.Source)).Bool("sealed", sealed).Msg("file uploaded")

	return result, nil
}

func (s *uploadService) seal(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxSealedFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if int64(len(body)) > maxSealedFileSize {
		return nil, fmt.Errorf("file exceeds %d bytes", maxSealedFileSize)
	}
	if crypto.IsSealed(body) {
		return body, nil
	}

	return s.sealer.Seal(body, s.sealPassphrase)
}

type journalService struct {
	journal store.TxJournalRepository
}

// NewJournalService creates a JournalService reading from journal.
func NewJournalService(journal store.TxJournalRepository) JournalService {
	return &journalService{journal: journal}
}

func (s *journalService) Recent(ctx context.Context, limit int) ([]models.TxRecord, error) {
	return s.journal.ListRecent(ctx, limit)
}
